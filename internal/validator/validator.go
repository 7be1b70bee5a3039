// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"rentfolio/internal/models"
)

// MonthLayout is the layout of month query parameters such as ?from=2023-01.
const MonthLayout = "2006-01"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("tenant_status", validateTenantStatus)
	_ = v.RegisterValidation("activity_kind", validateActivityKind)
	_ = v.RegisterValidation("month", validateMonth)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateTenantStatus(fl validator.FieldLevel) bool {
	return models.TenantStatus(fl.Field().String()).Valid()
}

func validateActivityKind(fl validator.FieldLevel) bool {
	return models.ActivityKind(fl.Field().String()).Valid()
}

func validateMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(MonthLayout, fl.Field().String())
	return err == nil
}
