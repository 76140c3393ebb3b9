package shopping

import "errors"

// Domain errors for shopping list operations

var (
	ErrOwnerRequired      = errors.New("shopping list must have an owner")
	ErrNameRequired       = errors.New("shopping list name is required")
	ErrNonPositiveDeficit = errors.New("shopping list items must carry a positive deficit")
)
