package shared

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits a user-supplied monetary amount may carry.
const MoneyScale = 2

// QuantityScale is the number of fractional digits a stock quantity may carry.
const QuantityScale = 4

var (
	amountPattern   = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	quantityPattern = regexp.MustCompile(`^\d+(\.\d{1,4})?$`)
)

// ParseAmount parses a user-supplied monetary amount in plain decimal notation
// ("150", "99.5", "12.34") and validates it.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(raw) {
		return decimal.Zero, NewValidationError(fmt.Sprintf("%s must be a positive number with at most %d decimal places", field, MoneyScale))
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError(fmt.Sprintf("%s is not a valid number", field))
	}
	if err := ValidateAmount(field, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ValidateAmount checks that a monetary amount is strictly positive and has at
// most two fractional digits.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return NewValidationError(fmt.Sprintf("%s must be greater than 0", field))
	}
	if !amount.Truncate(MoneyScale).Equal(amount) {
		return NewValidationError(fmt.Sprintf("%s must have at most %d decimal places", field, MoneyScale))
	}
	return nil
}

// ValidateQuantity checks that a quantity is strictly positive and fits the stored scale.
func ValidateQuantity(field string, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return NewValidationError(fmt.Sprintf("%s must be greater than 0", field))
	}
	if !quantity.Truncate(QuantityScale).Equal(quantity) {
		return NewValidationError(fmt.Sprintf("%s must have at most %d decimal places", field, QuantityScale))
	}
	return nil
}

// ExtendedAmount prices quantity units at unitPrice, rounded half away from
// zero to MoneyScale. A fractional quantity can produce sub-cent products;
// every total that reaches a debt or a balance goes through here so it stays
// payable with MoneyScale amounts.
func ExtendedAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Round(MoneyScale)
}

// ParseQuantity parses a user-supplied stock quantity in plain decimal notation.
func ParseQuantity(field, raw string) (decimal.Decimal, error) {
	if !quantityPattern.MatchString(raw) {
		return decimal.Zero, NewValidationError(fmt.Sprintf("%s must be a positive number with at most %d decimal places", field, QuantityScale))
	}
	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError(fmt.Sprintf("%s is not a valid number", field))
	}
	if err := ValidateQuantity(field, quantity); err != nil {
		return decimal.Zero, err
	}
	return quantity, nil
}

// IsAmountString reports whether raw is plain decimal notation with at most two fractional digits.
func IsAmountString(raw string) bool {
	return amountPattern.MatchString(raw)
}

// IsQuantityString reports whether raw is plain decimal notation with at most four fractional digits.
func IsQuantityString(raw string) bool {
	return quantityPattern.MatchString(raw)
}
