package faraid

import (
	"fmt"
	"math/big"
)

// normalize rescales the raw shares so they sum to exactly one. Shares above
// one are reduced proportionally ('awl). A shortfall with no residuary heir is
// returned to the non-spouse fixed heirs in proportion to their shares (radd);
// spouses only take part when spouseRadd is set and nobody else is left.
func normalize(entries []entry, raw *big.Rat, absorbed, spouseRadd bool) (Adjustment, error) {
	one := big.NewRat(1, 1)

	switch raw.Cmp(one) {
	case 0:
		return NoAdjustment, nil
	case 1:
		for i := range entries {
			entries[i].share.Quo(entries[i].share, raw)
		}
		return Awl, nil
	}

	// allocateResidue lifts raw to at least one whenever a residuary heir
	// exists, so this only fires if a rule change breaks that invariant.
	if absorbed {
		return NoAdjustment, fmt.Errorf("%w: residuary heirs left %s unallocated", ErrUnresolvedResidue, new(big.Rat).Sub(one, raw).RatString())
	}

	pool := raddPool(entries, false)
	if len(pool) == 0 && spouseRadd {
		pool = raddPool(entries, true)
	}
	if len(pool) == 0 {
		return NoAdjustment, fmt.Errorf("%w: %s of the estate is unclaimed", ErrUnresolvedResidue, new(big.Rat).Sub(one, raw).RatString())
	}

	poolTotal := new(big.Rat)
	for _, i := range pool {
		poolTotal.Add(poolTotal, entries[i].share)
	}
	shortfall := new(big.Rat).Sub(one, raw)
	// share += shortfall * share / poolTotal
	factor := new(big.Rat).Add(poolTotal, shortfall)
	factor.Quo(factor, poolTotal)
	for _, i := range pool {
		entries[i].share.Mul(entries[i].share, factor)
	}
	return Radd, nil
}

// raddPool returns the indexes of fixed heirs eligible for radd.
func raddPool(entries []entry, spouses bool) []int {
	var pool []int
	for i, e := range entries {
		if !e.category.hasFixed() || e.share.Sign() == 0 {
			continue
		}
		if e.class.IsSpouse() != spouses {
			continue
		}
		pool = append(pool, i)
	}
	return pool
}
