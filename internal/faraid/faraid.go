// Package faraid computes the distribution of an estate among heirs under the
// fixed-share and residuary rules of Islamic inheritance.
//
// A computation runs in three stages: heir rules resolve which classes
// inherit and how, fixed fractions and then the residue are allocated to
// individual heirs, and the raw shares are normalized by 'awl or radd so they
// always sum to exactly one. Shares are exact rationals; only the monetary
// amounts are rounded.
package faraid

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// DefaultAmountPlaces is the number of decimal places amounts are rounded to.
const DefaultAmountPlaces int32 = 2

// Calculator holds computation policy. The zero value rounds amounts to whole
// units and never returns a shortfall to spouses.
type Calculator struct {
	// SpouseRadd returns an unclaimed shortfall to the spouse when no other
	// fixed heir can take it.
	SpouseRadd bool

	AmountPlaces int32
}

// Compute distributes the estate with the default policy.
func Compute(h Household) (*Distribution, error) {
	return Calculator{AmountPlaces: DefaultAmountPlaces}.Compute(h)
}

// Compute distributes h.Estate among the heirs of h. It either returns a
// complete distribution whose shares sum to one or an error.
func (c Calculator) Compute(h Household) (*Distribution, error) {
	claims, err := resolve(h)
	if err != nil {
		return nil, err
	}

	entries, fixedTotal := allocateFixed(claims)
	residue, absorbed := allocateResidue(entries, fixedTotal)
	raw := sumShares(entries)

	adj, err := normalize(entries, new(big.Rat).Set(raw), absorbed, c.SpouseRadd)
	if err != nil {
		return nil, err
	}

	heirs := make([]HeirShare, 0, len(entries))
	for _, e := range entries {
		category := e.category
		if e.share.Sign() == 0 {
			category = Excluded
		}
		heirs = append(heirs, HeirShare{
			ID:       e.id(),
			Class:    e.class,
			Relation: e.class.Label(),
			Category: category,
			Share:    e.share,
			Amount:   amount(h.Estate, e.share, c.AmountPlaces),
		})
	}

	return &Distribution{
		Estate:     h.Estate,
		Heirs:      heirs,
		RawTotal:   raw,
		Residue:    residue,
		Adjustment: adj,
	}, nil
}

func amount(estate decimal.Decimal, share *big.Rat, places int32) decimal.Decimal {
	num := decimal.NewFromBigInt(share.Num(), 0)
	den := decimal.NewFromBigInt(share.Denom(), 0)
	return estate.Mul(num).DivRound(den, places)
}
