package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxSymbolLength  = 12
	MaxOrderQuantity = "1000000"
	MaxOrderPrice    = "10000000"
	MaxOwnerLength   = 255
)

var symbolPattern = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]*$`)

// ValidateSymbol validates an instrument symbol.
func ValidateSymbol(symbol string) error {
	if symbol == "" || len(symbol) > MaxSymbolLength {
		return fmt.Errorf("%w: symbol must be 1-%d characters", ErrInvalidOrder, MaxSymbolLength)
	}

	if !symbolPattern.MatchString(symbol) {
		return fmt.Errorf("%w: symbol %q is not a valid instrument code", ErrInvalidOrder, symbol)
	}

	return nil
}

// ValidateOrder validates the (symbol, quantity, price) triple of an order
// intent. Quantity and price must both be strictly positive.
func ValidateOrder(symbol string, quantity, price decimal.Decimal) error {
	if err := ValidateSymbol(symbol); err != nil {
		return err
	}

	if !quantity.IsPositive() {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidOrder)
	}

	maxQty, _ := decimal.NewFromString(MaxOrderQuantity)
	if quantity.GreaterThan(maxQty) {
		return fmt.Errorf("%w: quantity exceeds maximum of %s", ErrInvalidOrder, MaxOrderQuantity)
	}

	if !price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", ErrInvalidOrder)
	}

	maxPrice, _ := decimal.NewFromString(MaxOrderPrice)
	if price.GreaterThan(maxPrice) {
		return fmt.Errorf("%w: price exceeds maximum of %s", ErrInvalidOrder, MaxOrderPrice)
	}

	return nil
}

// ValidateOwner validates an account owner name.
func ValidateOwner(owner string) error {
	owner = strings.TrimSpace(owner)

	if owner == "" {
		return fmt.Errorf("%w: owner cannot be empty", ErrInvalidOwner)
	}

	if len(owner) > MaxOwnerLength {
		return fmt.Errorf("%w: owner exceeds %d characters", ErrInvalidOwner, MaxOwnerLength)
	}

	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	const (
		defaultPageSize = 50
		maxPageSize     = 500
	)

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
