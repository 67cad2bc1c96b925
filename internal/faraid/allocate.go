package faraid

import (
	"fmt"
	"math/big"
)

// entry is one individual heir moving through the allocation pipeline.
type entry struct {
	class    Class
	category Category
	index    int
	count    int
	weight   int64
	share    *big.Rat
}

func (e entry) id() string {
	if e.class == Wife || e.class == Son || e.class == Daughter {
		return fmt.Sprintf("%s_%d", e.class, e.index)
	}
	return e.class.String()
}

// allocateFixed expands claims into individual entries, giving each its part
// of the class's fixed fraction. The returned total may exceed one.
func allocateFixed(claims []claim) ([]entry, *big.Rat) {
	var entries []entry
	total := new(big.Rat)
	for _, c := range claims {
		var each *big.Rat
		if c.category.hasFixed() {
			total.Add(total, c.fixed)
			each = new(big.Rat).Quo(c.fixed, big.NewRat(int64(c.count), 1))
		}
		for i := 0; i < c.count; i++ {
			share := new(big.Rat)
			if each != nil {
				share.Set(each)
			}
			entries = append(entries, entry{
				class:    c.class,
				category: c.category,
				index:    i,
				count:    c.count,
				weight:   c.weight,
				share:    share,
			})
		}
	}
	return entries, total
}

// allocateResidue splits max(0, 1 - fixedTotal) over the residuary entries by
// weight. It reports the residue and whether any residuary heir absorbed it.
func allocateResidue(entries []entry, fixedTotal *big.Rat) (*big.Rat, bool) {
	residue := new(big.Rat).Sub(big.NewRat(1, 1), fixedTotal)
	if residue.Sign() < 0 {
		residue.SetInt64(0)
	}

	var totalWeight int64
	for _, e := range entries {
		if e.category.hasResidue() {
			totalWeight += e.weight
		}
	}
	if totalWeight == 0 {
		return residue, false
	}

	for i := range entries {
		if !entries[i].category.hasResidue() {
			continue
		}
		part := new(big.Rat).Mul(residue, big.NewRat(entries[i].weight, totalWeight))
		entries[i].share.Add(entries[i].share, part)
	}
	return residue, true
}

func sumShares(entries []entry) *big.Rat {
	sum := new(big.Rat)
	for _, e := range entries {
		sum.Add(sum, e.share)
	}
	return sum
}
