package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/facturly/facturly-backend/internal/core/domain"
)

// RegisterCustomValidators wires domain-aware validations into gin's binding
// engine. Must be called once before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("invoicestatus", validInvoiceStatus)
	}
}

func validInvoiceStatus(fl validator.FieldLevel) bool {
	return domain.InvoiceStatus(fl.Field().String()).IsValid()
}
