// Package errors provides structured error handling for the engine.
// Callers in the command layer switch on the error code to pick the
// user-facing message.
package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorCode represents an error code
type ErrorCode string

// Error codes surfaced to the command layer
const (
	// Client-caused errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"

	// Server errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Business logic errors
	CodeRecipeNotFound       ErrorCode = "RECIPE_NOT_FOUND"
	CodeItemNotFound         ErrorCode = "ITEM_NOT_FOUND"
	CodeShoppingListNotFound ErrorCode = "SHOPPING_LIST_NOT_FOUND"
	CodeDuplicateRecipeName  ErrorCode = "DUPLICATE_RECIPE_NAME"
	CodeInvalidQuantity      ErrorCode = "INVALID_QUANTITY"
	CodeInsufficientQuantity ErrorCode = "INSUFFICIENT_QUANTITY"
	CodeRecipeInUse          ErrorCode = "RECIPE_IN_USE"
)

// AppError represents an application error with structured information
type AppError struct {
	Code       ErrorCode              `json:"code"`
	Message    string                 `json:"message"`
	Details    string                 `json:"details,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Cause      error                  `json:"-"`
	StackTrace string                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		Details:    details,
		StackTrace: getStackTrace(),
	}
}

// Predefined error constructors for common scenarios

// NewNotFoundError creates a generic not found error
func NewNotFoundError(resource string) *AppError {
	message := "Resource not found"
	if resource != "" {
		message = fmt.Sprintf("%s not found", resource)
	}
	return NewAppError(CodeNotFound, message, "")
}

// NewValidationError creates a validation error
func NewValidationError(details string) *AppError {
	return NewAppError(CodeValidationFailed, "Validation failed", details)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, cause error) *AppError {
	return NewAppError(
		CodeDatabaseError,
		"Database operation failed",
		fmt.Sprintf("operation: %s", operation),
	).WithCause(cause)
}

// NewRecipeNotFoundError creates a recipe not found error
func NewRecipeNotFoundError(recipeID string) *AppError {
	return NewAppError(
		CodeRecipeNotFound,
		"Recipe not found",
		fmt.Sprintf("recipe ID: %s", recipeID),
	)
}

// NewItemNotFoundError creates an inventory item not found error
func NewItemNotFoundError(foodName string) *AppError {
	return NewAppError(
		CodeItemNotFound,
		"Inventory item not found",
		fmt.Sprintf("food: %s", foodName),
	)
}

// NewShoppingListNotFoundError creates a shopping list not found error
func NewShoppingListNotFoundError(listID string) *AppError {
	return NewAppError(
		CodeShoppingListNotFound,
		"Shopping list not found",
		fmt.Sprintf("list ID: %s", listID),
	)
}

// NewDuplicateRecipeNameError creates a duplicate recipe name error
func NewDuplicateRecipeNameError(name string) *AppError {
	return NewAppError(
		CodeDuplicateRecipeName,
		"A recipe with this name already exists",
		fmt.Sprintf("name: %s", name),
	)
}

// NewInvalidQuantityError creates an invalid quantity error
func NewInvalidQuantityError(details string) *AppError {
	return NewAppError(CodeInvalidQuantity, "Quantity must be positive", details)
}

// NewInsufficientQuantityError creates an insufficient quantity error.
// The ledger itself clamps deductions at zero; this error is raised by the
// validating operations (UseItem, ConsumeRecipe) before any mutation.
func NewInsufficientQuantityError(foodName string, available, requested float64) *AppError {
	return NewAppError(
		CodeInsufficientQuantity,
		"Not enough of this item in inventory",
		fmt.Sprintf("food: %s, available: %g, requested: %g", foodName, available, requested),
	).WithMetadata("available", available).WithMetadata("requested", requested)
}

// NewRecipeInUseError creates a recipe in use error
func NewRecipeInUseError(recipeID string) *AppError {
	return NewAppError(
		CodeRecipeInUse,
		"Recipe is referenced by planned meals",
		fmt.Sprintf("recipe ID: %s", recipeID),
	)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An internal error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// IsCode reports whether err is an AppError carrying the given code
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:       appErr.Code,
			Message:    message,
			Details:    appErr.Message,
			Metadata:   appErr.Metadata,
			Cause:      appErr,
			StackTrace: appErr.StackTrace,
		}
	}
	return NewAppError(CodeInternal, message, err.Error()).WithCause(err)
}

// getStackTrace captures the current stack trace
func getStackTrace() string {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	lines := strings.Split(string(buf[:n]), "\n")

	// Skip the first lines that are part of the error handling itself
	var filtered []string
	for i, line := range lines {
		if i > 4 && !strings.Contains(line, "pkg/errors") {
			filtered = append(filtered, line)
		}
	}
	return strings.Join(filtered, "\n")
}
