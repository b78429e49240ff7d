package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidTransition  = errors.New("status transition not allowed")

	ErrReservationNotFound = errors.New("reservation not found")

	ErrSuggestionNotConfigured = errors.New("meal suggestions are not configured")
	ErrSuggestionInProgress    = errors.New("a meal suggestion is already being generated")
	ErrSuggestionFailed        = errors.New("failed to generate a meal suggestion, please try again")
	ErrSuggestionInvalid       = errors.New("the meal suggestion could not be understood, please try again")

	ErrAnalyticsUnavailable = errors.New("analytics are not configured")
)
