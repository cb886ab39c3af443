package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate
// these into HTTP status codes; anything else is a 500.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidRole        = errors.New("invalid role")
	ErrOrderNumberTaken   = errors.New("order number already taken")
)
