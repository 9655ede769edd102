package utils

import (
	"storyai-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("category", validateCategory)
	validate.RegisterValidation("weekday", validateWeekday)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, category := range constvars.ActivityCategories {
		if value == category {
			return true
		}
	}
	return false
}

func validateWeekday(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch value {
	case "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday":
		return true
	}
	return false
}
