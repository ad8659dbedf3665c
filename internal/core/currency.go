package core

// Currency is a display currency symbol from the closed supported set.
type Currency string

// DefaultCurrency is assigned to new accounts.
const DefaultCurrency Currency = "$"

// SupportedCurrencies is the closed set of display currencies, in the order
// they are offered in the selector.
var SupportedCurrencies = []Currency{"$", "₹", "£", "€", "¥", "₱", "RM", "AED", "SAR"}

// ParseCurrency validates a symbol against the supported set.
// The empty string maps to the default.
func ParseCurrency(s string) (Currency, error) {
	if s == "" {
		return DefaultCurrency, nil
	}
	for _, c := range SupportedCurrencies {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrInvalidCurrency
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Validate() error {
	_, err := ParseCurrency(string(c))
	return err
}
