package services

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrEmailTaken         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrUserNotFound       = errors.New("User not found")

	ErrProductNotFound = errors.New("Product not found")
	ErrUnknownVariant  = errors.New("Unknown product variant")

	ErrOrderNotFound     = errors.New("Order not found")
	ErrNoItems           = errors.New("No order items")
	ErrOrderIDTaken      = errors.New("Order id already used by another account")
	ErrTotalMismatch     = errors.New("Order total does not match item prices")
	ErrInvalidStatus     = errors.New("Invalid order status")
	ErrIllegalTransition = errors.New("Illegal order status transition")
)
