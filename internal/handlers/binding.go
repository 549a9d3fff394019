package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"studymate-backend/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// report fields by their json names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

// bindJSON binds the body into obj and turns binding failures into
// validation errors naming the first offending field.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}
	return bindError(err)
}

func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		switch first.Tag() {
		case "required", "notblank":
			return apperr.FieldRequired(first.Field())
		default:
			return apperr.FieldInvalid(first.Field())
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.FieldInvalid(typeErr.Field)
	}
	return apperr.Validation("Invalid request body")
}
