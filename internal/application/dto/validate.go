package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate valida un request según sus tags `validate`.
func Validate(s any) error {
	return validate.Struct(s)
}
