package validatorx

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

const minPasswordLength = 6

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	nv := gpvalidator.New()
	_ = nv.RegisterValidation("notblank", validators.NotBlank)
	_ = nv.RegisterValidation("strongpassword", strongPassword)
	_ = nv.RegisterValidation("anyfilled", anyFilled)
	v = nv
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// strongPassword requires at least one lower case letter, one upper case
// letter and one digit, and a minimum length.
func strongPassword(fl gpvalidator.FieldLevel) bool {
	pw := fl.Field().String()
	if len(pw) < minPasswordLength {
		return false
	}
	var lower, upper, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// anyFilled requires a string slice with at least one non-blank entry.
// Blank entries are allowed next to it.
func anyFilled(fl gpvalidator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < field.Len(); i++ {
		item := field.Index(i)
		if item.Kind() == reflect.String && strings.TrimSpace(item.String()) != "" {
			return true
		}
	}
	return false
}
