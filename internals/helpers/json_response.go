// file: internals/helpers/json_response.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error shape
   Every failure is {ok:false, message, error_code} so clients can
   branch on a stable code instead of matching free text.
=================================*/

type ErrorResponse struct {
	Ok        bool                `json:"ok"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: generic error (not a field-validation error)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Ok:        false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// ErrorHandler funnels fiber errors (including the ones returned by
// middleware, e.g. 401/403 from the JWT guards) into the same error
// shape as JsonError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := fiber.ErrInternalServerError.Message
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	return JsonError(c, code, message)
}

// JsonValidationError: validator.v10 field errors → 400 with per-field tags
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fieldErrors := map[string][]string{}
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Ok:        false,
		Message:   "validation failed",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	})
}

/* ===============================
   Success shapes
   The claim endpoints answer {ok:true, ...} with endpoint-specific
   keys, so JsonOK takes the extra keys as a map instead of forcing
   everything under "data".
=================================*/

// JsonOK: 200 + {ok:true, <extra keys>}
func JsonOK(c *fiber.Ctx, extra fiber.Map) error {
	return JsonOKWithCode(c, fiber.StatusOK, extra)
}

// JsonCreated: 201 + {ok:true, <extra keys>}
func JsonCreated(c *fiber.Ctx, extra fiber.Map) error {
	return JsonOKWithCode(c, fiber.StatusCreated, extra)
}

func JsonOKWithCode(c *fiber.Ctx, status int, extra fiber.Map) error {
	body := fiber.Map{"ok": true}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}
