package faraid

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxChildren caps the number of sons and of daughters in one household.
const MaxChildren = 100

// Household describes the decedent's estate and surviving relatives.
type Household struct {
	Estate     decimal.Decimal
	Husband    bool
	Wife       bool
	WivesCount int
	Father     bool
	Mother     bool
	Sons       int
	Daughters  int
}

// ParseEstate parses a user-supplied estate value.
func ParseEstate(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidEstateValue)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not numeric", ErrInvalidEstateValue, s)
	}
	if !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidEstateValue, v)
	}
	return v, nil
}

func (h Household) hasChildren() bool {
	return h.Sons > 0 || h.Daughters > 0
}

// wives returns the number of wives, zero when no wife is present.
func (h Household) wives() int {
	if !h.Wife {
		return 0
	}
	return h.WivesCount
}

// Validate checks the household invariants.
func (h Household) Validate() error {
	if !h.Estate.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidEstateValue, h.Estate)
	}
	if h.Husband && h.Wife {
		return ErrConflictingSpouse
	}
	if h.Wife && (h.WivesCount < 1 || h.WivesCount > 4) {
		return fmt.Errorf("%w: got %d", ErrInvalidWivesCount, h.WivesCount)
	}
	if h.Sons < 0 || h.Sons > MaxChildren {
		return fmt.Errorf("%w: sons = %d, want 0..%d", ErrInvalidHeirCount, h.Sons, MaxChildren)
	}
	if h.Daughters < 0 || h.Daughters > MaxChildren {
		return fmt.Errorf("%w: daughters = %d, want 0..%d", ErrInvalidHeirCount, h.Daughters, MaxChildren)
	}
	if !h.Husband && !h.Wife && !h.Father && !h.Mother && h.Sons == 0 && h.Daughters == 0 {
		return ErrNoHeirs
	}
	return nil
}
