// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var planSlugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("plan_slug", validatePlanSlug)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("deposit_method", validateDepositMethod)
	}
}

func validatePlanSlug(fl validator.FieldLevel) bool {
	return planSlugRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "DEPOSIT", "INVESTMENT", "SETTLEMENT", "WITHDRAWAL", "REFERRAL":
		return true
	}
	return false
}

func validateDepositMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "btc", "eth", "usdt_trc20", "usdt_erc20", "bank_transfer":
		return true
	}
	return false
}
