// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"quickspend/internal/analytics"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("necessity", validateNecessity)
		_ = v.RegisterValidation("period", validatePeriod)
	}
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "expense", "income", "savings":
		return true
	}
	return false
}

func validateNecessity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "need", "want":
		return true
	}
	return false
}

func validatePeriod(fl validator.FieldLevel) bool {
	_, ok := analytics.ParsePeriodType(fl.Field().String())
	return ok
}
