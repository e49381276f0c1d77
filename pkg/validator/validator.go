package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe un campo que no pasó la validación del DTO.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

func init() {
	// "date" valida el formato de fecha calendario YYYY-MM-DD usado en toda la API.
	// Solo forma, no semántica: la capa de agregación compara strings léxicamente.
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 10 || s[4] != '-' || s[7] != '-' {
			return false
		}
		for i, r := range s {
			if i == 4 || i == 7 {
				continue
			}
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}

// ValidateStruct valida un DTO por sus tags `validate` y devuelve los campos fallidos.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Tag: "invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Describe produce un mensaje legible a partir de los errores de campo.
func Describe(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Param != "" {
			parts = append(parts, fmt.Sprintf("%s (%s=%s)", e.Field, e.Tag, e.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s (%s)", e.Field, e.Tag))
		}
	}
	return strings.Join(parts, ", ")
}
