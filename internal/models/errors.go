package models

import "errors"

var (
	// ErrNoRecord is returned when a lookup matches nothing.
	ErrNoRecord = errors.New("models: no matching record found")

	// ErrForbidden is returned when the acting user fails an ownership
	// or role check. Never a silent no-op.
	ErrForbidden = errors.New("models: not authorized")

	ErrDuplicateReview   = errors.New("models: you have already reviewed this product")
	ErrInvalidRating     = errors.New("models: rating must be between 1 and 5")
	ErrInvalidStatus     = errors.New("models: invalid order status")
	ErrNoOrderItems      = errors.New("models: no order items")
	ErrInvalidQuantity   = errors.New("models: item quantity must be at least 1")
	ErrMissingShipping   = errors.New("models: incomplete shipping address")
	ErrMissingPayment    = errors.New("models: payment method is required")
	ErrAlreadyInWishlist = errors.New("models: product already in wishlist")
	ErrNotInWishlist     = errors.New("models: product not in wishlist")

	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: email address is already in use")
	ErrSelfDelete         = errors.New("models: you cannot delete yourself")
)
