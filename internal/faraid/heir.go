package faraid

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Class identifies a kind of heir.
type Class int

const (
	Husband Class = iota
	Wife
	Father
	Mother
	Son
	Daughter
)

var classNames = [...]string{"husband", "wife", "father", "mother", "son", "daughter"}

var classLabels = [...]string{"Husband", "Wife", "Father", "Mother", "Son", "Daughter"}

func (c Class) String() string {
	if c < Husband || c > Daughter {
		return "unknown"
	}
	return classNames[c]
}

// Label is the display relation for the class.
func (c Class) Label() string {
	if c < Husband || c > Daughter {
		return "Unknown"
	}
	return classLabels[c]
}

// IsSpouse reports whether the class is excluded from radd.
func (c Class) IsSpouse() bool {
	return c == Husband || c == Wife
}

// Category is the eligibility class of an heir.
type Category int

const (
	Excluded Category = iota
	Fixed
	Residuary
	// FixedAndResiduary is the father with daughters and no son: a fixed
	// 1/6 plus whatever residue remains.
	FixedAndResiduary
)

func (c Category) String() string {
	switch c {
	case Fixed:
		return "fixed"
	case Residuary:
		return "residuary"
	case FixedAndResiduary:
		return "fixed+residuary"
	default:
		return "excluded"
	}
}

func (c Category) hasFixed() bool {
	return c == Fixed || c == FixedAndResiduary
}

func (c Category) hasResidue() bool {
	return c == Residuary || c == FixedAndResiduary
}

// Adjustment records which normalization was applied.
type Adjustment int

const (
	NoAdjustment Adjustment = iota
	Awl
	Radd
)

func (a Adjustment) String() string {
	switch a {
	case Awl:
		return "awl"
	case Radd:
		return "radd"
	default:
		return "none"
	}
}

// HeirShare is the final entitlement of one individual heir.
type HeirShare struct {
	ID       string
	Class    Class
	Relation string
	Category Category
	Share    *big.Rat
	Amount   decimal.Decimal
}

// Percent returns the share as a percentage, for display only.
func (s HeirShare) Percent() float64 {
	f, _ := s.Share.Float64()
	return f * 100
}

// Distribution is the result of one computation.
type Distribution struct {
	Estate     decimal.Decimal
	Heirs      []HeirShare
	RawTotal   *big.Rat
	Residue    *big.Rat
	Adjustment Adjustment
}

// Total returns the sum of all heir shares.
func (d *Distribution) Total() *big.Rat {
	sum := new(big.Rat)
	for _, h := range d.Heirs {
		sum.Add(sum, h.Share)
	}
	return sum
}
