package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	directoryapp "github.com/muhammadheryan/fashion-directory/application/directory"
	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	utilsContext "github.com/muhammadheryan/fashion-directory/utils/context"
	"github.com/muhammadheryan/fashion-directory/utils/errors"
	"github.com/muhammadheryan/fashion-directory/utils/logger"
	validatorx "github.com/muhammadheryan/fashion-directory/utils/validator"
	"go.uber.org/zap"
)

// ListSpecialties handler
// @Summary Known designer specialties
// @Tags Designers
// @Produce json
// @Success 200 {object} Response{data=[]string}
// @Router /specialties [get]
func (s *RestHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, constant.Specialties)
}

// ListDesigners handler
// @Summary List designers
// @Description Returns the filtered view. Query parameters override the stored search criteria for this request only.
// @Tags Designers
// @Produce json
// @Param search query string false "Search term"
// @Param specialty query string false "Specialty, or All Specialties"
// @Success 200 {object} Response{data=model.DesignerListResponse}
// @Router /designers [get]
func (s *RestHandler) ListDesigners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	if !q.Has("search") && !q.Has("specialty") {
		items := s.DirectoryApp.GetFilteredDesigners(ctx)
		writeSuccess(w, model.DesignerListResponse{
			Items:   items,
			Total:   len(items),
			Filters: s.DirectoryApp.SearchFilters(ctx),
		})
		return
	}

	filters := s.DirectoryApp.SearchFilters(ctx)
	if q.Has("search") {
		filters.SearchTerm = q.Get("search")
	}
	if q.Has("specialty") {
		filters.SelectedSpecialty = q.Get("specialty")
	}

	items := directoryapp.FilterDesigners(s.DirectoryApp.ListDesigners(ctx), filters)
	writeSuccess(w, model.DesignerListResponse{
		Items:   items,
		Total:   len(items),
		Filters: filters,
	})
}

// GetSearchFilters handler
// @Summary Current search criteria
// @Tags Designers
// @Produce json
// @Success 200 {object} Response{data=model.SearchFilters}
// @Router /designers/filters [get]
func (s *RestHandler) GetSearchFilters(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.DirectoryApp.SearchFilters(r.Context()))
}

// SetSearchFilters handler
// @Summary Replace search criteria
// @Tags Designers
// @Accept json
// @Produce json
// @Param request body model.SearchFilters true "Search criteria"
// @Success 200 {object} Response{data=model.SearchFilters}
// @Failure 400 {object} Response
// @Router /designers/filters [put]
func (s *RestHandler) SetSearchFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SearchFilters
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.DirectoryApp.SetSearchFilters(ctx, req)
	writeSuccess(w, s.DirectoryApp.SearchFilters(ctx))
}

// GetDesigner handler
// @Summary Designer detail
// @Tags Designers
// @Produce json
// @Param id path int true "Designer ID"
// @Success 200 {object} Response{data=model.Designer}
// @Failure 404 {object} Response
// @Router /designers/{id} [get]
func (s *RestHandler) GetDesigner(w http.ResponseWriter, r *http.Request) {
	id, err := designerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DirectoryApp.GetDesigner(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateDesigner handler
// @Summary Add designer
// @Description Rating starts at 0, an empty image falls back to a placeholder, blank services are dropped
// @Tags Designers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DesignerRequest true "Designer"
// @Success 201 {object} Response{data=model.Designer}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /designers [post]
func (s *RestHandler) CreateDesigner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.DesignerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.AddDesigner(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	audit(r, "designer.created", res.ID)
	writeCreated(w, res)
}

// UpdateDesigner handler
// @Summary Replace designer
// @Description Blank services are dropped
// @Tags Designers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Designer ID"
// @Param request body model.Designer true "Designer"
// @Success 200 {object} Response{data=model.Designer}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Failure 404 {object} Response
// @Router /designers/{id} [put]
func (s *RestHandler) UpdateDesigner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := designerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.Designer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	req.ID = id

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DirectoryApp.UpdateDesigner(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	if res == nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}

	audit(r, "designer.updated", res.ID)
	writeSuccess(w, res)
}

// DeleteDesigner handler
// @Summary Delete designer
// @Description Deleting an unknown id succeeds
// @Tags Designers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Designer ID"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /designers/{id} [delete]
func (s *RestHandler) DeleteDesigner(w http.ResponseWriter, r *http.Request) {
	id, err := designerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.DirectoryApp.DeleteDesigner(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	audit(r, "designer.deleted", id)
	writeSuccess(w, nil)
}

// audit records which session user changed the directory.
func audit(r *http.Request, action string, id uint64) {
	userID, _ := utilsContext.GetUserID(r.Context())
	logger.Info("directory change",
		zap.String("action", action),
		zap.Uint64("designer_id", id),
		zap.Uint64("user_id", userID))
}

func designerID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
