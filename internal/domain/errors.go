package domain

import "errors"

var (
	// Order errors
	ErrInvalidOrder         = errors.New("invalid order")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrNoSuchHolding        = errors.New("no holding for symbol")
	ErrInsufficientHoldings = errors.New("insufficient holdings to sell")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidOwner    = errors.New("invalid owner")

	// Price oracle errors
	ErrPriceUnavailable = errors.New("no live price for symbol")

	// Persistence errors
	ErrConflict = errors.New("concurrent update detected")

	// Auth errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)
