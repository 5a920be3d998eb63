package http

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validPhone accepts any non-blank string. The phone number is an opaque
// identity key, not a dialable guarantee, so no format is imposed beyond
// what the domain layer itself requires.
func validPhone(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// registerValidators installs custom binding validators on gin's validator
// engine. Called once during router construction.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("phone", validPhone)
	}
}
