package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"esuka/models"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator. Field names in errors use the json
// tag, and the custom tags jabatan, sifat and role are registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("jabatan", func(fl validator.FieldLevel) bool {
			return models.Jabatan(fl.Field().String()).IsValid()
		})
		// jabatan_or_empty lets a nullable jabatan be cleared with "".
		_ = v.RegisterValidation("jabatan_or_empty", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || models.Jabatan(value).IsValid()
		})
		_ = v.RegisterValidation("sifat", func(fl validator.FieldLevel) bool {
			return models.Sifat(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return models.Role(fl.Field().String()).IsValid()
		})
		validate = v
	})
	return validate
}

// ValidateStruct runs the struct tags of s and returns one message per
// failing field, keyed by its json name. An empty map means s is valid.
func ValidateStruct(s any) map[string]string {
	out := make(map[string]string)
	err := Validator().Struct(s)
	if err == nil {
		return out
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return field + " does not match"
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "jabatan", "jabatan_or_empty":
		return field + " is not a known jabatan"
	case "sifat":
		return field + " must be Biasa, Penting, Segera, or Rahasia"
	case "role":
		return field + " must be admin or user"
	default:
		return field + " is invalid"
	}
}
