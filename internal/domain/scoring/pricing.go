package scoring

import (
	"fmt"
	"math"
)

// PriceRules re-derives a player's market value from season points.
type PriceRules struct {
	Floor    int64
	Base     int64
	PerPoint int64
}

func DefaultPriceRules() PriceRules {
	return PriceRules{
		Floor:    50000,
		Base:     100000,
		PerPoint: 1000,
	}
}

func (r PriceRules) Validate() error {
	if r.Floor <= 0 {
		return fmt.Errorf("price floor must be greater than zero")
	}
	if r.Base <= 0 {
		return fmt.Errorf("base price must be greater than zero")
	}
	if r.PerPoint < 0 {
		return fmt.Errorf("price per point must be >= 0")
	}
	return nil
}

// Reprice is computed from scratch on every call, never as a delta. Prices
// saturate at math.MaxInt64 instead of wrapping.
func (r PriceRules) Reprice(seasonPoints int) int64 {
	points := int64(seasonPoints)
	if r.PerPoint > 0 {
		if points > (math.MaxInt64-r.Base)/r.PerPoint {
			return math.MaxInt64
		}
		if points < math.MinInt64/r.PerPoint {
			return r.Floor
		}
	}

	price := r.Base + points*r.PerPoint
	if price < r.Floor {
		return r.Floor
	}
	return price
}

// ListingPrice keeps an admin-entered price at or above the floor.
func (r PriceRules) ListingPrice(basePrice int64) int64 {
	if basePrice < r.Floor {
		return r.Floor
	}
	return basePrice
}
