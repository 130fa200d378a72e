package utils

import (
	"regexp"

	"compliance-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("version", validateVersion)
	validate.RegisterValidation("user_role", validateUserRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateVersion(fl validator.FieldLevel) bool {
	version := fl.Field().String()
	return regexp.MustCompile(constvars.RegexNumericVersion).MatchString(version)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleAdmin || value == constvars.RoleUser
}

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
