package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a parsed request body.
// Failures are surfaced as a 400 before any store or model access happens.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var invalid []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			invalid = append(invalid, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
		}
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request: "+strings.Join(invalid, ", "))
	}
	return nil
}
