package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
)

// FieldError is a single validation failure message, rendered inside the
// errors array of a 400 response.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewValidationError(fields ...FieldError) *AppError {
	msg := "Validation failed"
	if len(fields) > 0 {
		msg = fields[0].Msg
	}
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Fields:  fields,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Fields:  []FieldError{{Msg: message}},
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

// NewRequestError reports a request that conflicts with current state, such
// as liking an already-liked post. It renders as 400 with a plain msg body.
func NewRequestError(message string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Server Error",
		Err:     err,
	}
}

// RespondWithError renders an error at the endpoint boundary.
//
// Validation and conflict failures render as {"errors":[{"msg":...},...]},
// internal failures as a plain-text body, everything else as {"msg":...}.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError(err)
		status = fiber.StatusInternalServerError
	}

	switch appErr.Code {
	case CodeValidation, CodeConflict:
		fields := appErr.Fields
		if len(fields) == 0 {
			fields = []FieldError{{Msg: appErr.Message}}
		}
		return c.Status(status).JSON(fiber.Map{"errors": fields})
	case CodeInternal:
		return c.Status(status).SendString("Server Error")
	default:
		return c.Status(status).JSON(fiber.Map{"msg": appErr.Message})
	}
}
