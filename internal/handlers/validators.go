package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/smarttravel/smart_travel_backend/internal/core/domain"
)

// Custom binding validations shared by the request DTOs.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("transportmode", validTransportMode)
	}
}

// validTransportMode accepts only recognized transport modes and their
// aliases. Free-text fallback is reserved for fare quotes.
func validTransportMode(fl validator.FieldLevel) bool {
	_, ok := domain.ParseTransportMode(fl.Field().String())
	return ok
}
