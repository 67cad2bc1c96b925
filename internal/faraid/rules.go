package faraid

import "math/big"

// claim is the entitlement of one heir class before allocation. fixed is the
// total fraction for the whole class and is nil for purely residuary claims.
type claim struct {
	class    Class
	category Category
	count    int
	fixed    *big.Rat
	weight   int64
}

// rule decides whether an heir class inherits from a household and how.
type rule interface {
	Resolve(h Household) (claim, bool)
}

type husbandRule struct{}

func (husbandRule) Resolve(h Household) (claim, bool) {
	if !h.Husband {
		return claim{}, false
	}
	share := big.NewRat(1, 2)
	if h.hasChildren() {
		share = big.NewRat(1, 4)
	}
	return claim{class: Husband, category: Fixed, count: 1, fixed: share}, true
}

type wifeRule struct{}

// Resolve gives the wives one combined share, split equally later.
func (wifeRule) Resolve(h Household) (claim, bool) {
	n := h.wives()
	if n == 0 {
		return claim{}, false
	}
	share := big.NewRat(1, 4)
	if h.hasChildren() {
		share = big.NewRat(1, 8)
	}
	return claim{class: Wife, category: Fixed, count: n, fixed: share}, true
}

type fatherRule struct{}

func (fatherRule) Resolve(h Household) (claim, bool) {
	if !h.Father {
		return claim{}, false
	}
	switch {
	case h.Sons > 0:
		return claim{class: Father, category: Fixed, count: 1, fixed: big.NewRat(1, 6)}, true
	case h.Daughters > 0:
		return claim{class: Father, category: FixedAndResiduary, count: 1, fixed: big.NewRat(1, 6), weight: 1}, true
	default:
		return claim{class: Father, category: Residuary, count: 1, weight: 1}, true
	}
}

type motherRule struct{}

func (motherRule) Resolve(h Household) (claim, bool) {
	if !h.Mother {
		return claim{}, false
	}
	share := big.NewRat(1, 3)
	if h.hasChildren() {
		share = big.NewRat(1, 6)
	}
	return claim{class: Mother, category: Fixed, count: 1, fixed: share}, true
}

type sonRule struct{}

func (sonRule) Resolve(h Household) (claim, bool) {
	if h.Sons <= 0 {
		return claim{}, false
	}
	return claim{class: Son, category: Residuary, count: h.Sons, weight: 2}, true
}

type daughterRule struct{}

func (daughterRule) Resolve(h Household) (claim, bool) {
	if h.Daughters <= 0 {
		return claim{}, false
	}
	if h.Sons > 0 {
		return claim{class: Daughter, category: Residuary, count: h.Daughters, weight: 1}, true
	}
	share := big.NewRat(2, 3)
	if h.Daughters == 1 {
		share = big.NewRat(1, 2)
	}
	return claim{class: Daughter, category: Fixed, count: h.Daughters, fixed: share}, true
}

// rules is ordered; the output distribution follows the same order.
var rules = []rule{
	husbandRule{},
	wifeRule{},
	fatherRule{},
	motherRule{},
	sonRule{},
	daughterRule{},
}
