package faraid

import (
	"math/big"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Every combination of the modelled heirs must either fail validation or sum
// to exactly one, from many goroutines at once.
func TestComputeAllHouseholdsConcurrently(t *testing.T) {
	var households []Household
	for spouse := 0; spouse < 3; spouse++ {
		for wives := 1; wives <= 4; wives++ {
			if spouse != 2 && wives > 1 {
				continue
			}
			for parents := 0; parents < 4; parents++ {
				for sons := 0; sons < 4; sons++ {
					for daughters := 0; daughters < 4; daughters++ {
						households = append(households, Household{
							Estate:     estate("1000"),
							Husband:    spouse == 1,
							Wife:       spouse == 2,
							WivesCount: wives,
							Father:     parents&1 != 0,
							Mother:     parents&2 != 0,
							Sons:       sons,
							Daughters:  daughters,
						})
					}
				}
			}
		}
	}

	calc := Calculator{SpouseRadd: true, AmountPlaces: 2}
	one := big.NewRat(1, 1)

	var g errgroup.Group
	g.SetLimit(8)
	for _, h := range households {
		g.Go(func() error {
			d, err := calc.Compute(h)
			if err != nil {
				if h.Husband || h.Wife || h.Father || h.Mother || h.Sons > 0 || h.Daughters > 0 {
					t.Errorf("%+v: unexpected error %v", h, err)
				}
				return nil
			}
			if d.Total().Cmp(one) != 0 {
				t.Errorf("%+v: shares sum to %s", h, d.Total().RatString())
			}
			for _, s := range d.Heirs {
				if s.Share.Sign() < 0 || s.Share.Cmp(one) > 0 {
					t.Errorf("%+v: %s share %s out of range", h, s.ID, s.Share.RatString())
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}
