package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/utils/errors"
	"github.com/muhammadheryan/fashion-directory/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("write response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Code:    constant.ErrorTypeCode[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Code:    constant.ErrorTypeCode[constant.Successful],
		Data:    data,
	})
}

// writeError renders err as a failed envelope. Anything that is not a
// CustomError is reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("unexpected handler error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Success: false,
		Code:    ce.ErrorCode(),
		Error:   ce.Error(),
	})
}
