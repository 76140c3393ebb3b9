package inventory

import "errors"

// Domain errors for inventory operations

var (
	ErrOwnerRequired    = errors.New("inventory item must have an owner")
	ErrFoodNameRequired = errors.New("food name is required")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrInvalidLocation  = errors.New("unknown storage location")
)
