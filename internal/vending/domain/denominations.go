package domain

import (
	"fmt"
	"slices"
)

// DenominationSet is the immutable set of coin values accepted for deposits
// and paid out as change. It is built once at startup and shared read-only.
type DenominationSet struct {
	values []int
}

// NewDenominationSet validates the configured coins and fails fast instead of
// letting a bad set surface later as a change-computation fault. Every coin
// must be a positive multiple of the smallest one: deposits are members of
// the set and costs are multiples of the smallest coin, so every reachable
// balance stays a multiple of it and the greedy payout can always finish.
func NewDenominationSet(values []int) (DenominationSet, error) {
	if len(values) == 0 {
		return DenominationSet{}, fmt.Errorf("denomination set must not be empty")
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	if sorted[0] <= 0 {
		return DenominationSet{}, fmt.Errorf("denominations must be positive, got %d", sorted[0])
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return DenominationSet{}, fmt.Errorf("duplicate denomination %d", sorted[i])
		}
	}

	smallest := sorted[0]
	for _, v := range sorted {
		if v%smallest != 0 {
			return DenominationSet{}, fmt.Errorf("denomination %d is not a multiple of the smallest coin %d", v, smallest)
		}
	}

	return DenominationSet{values: sorted}, nil
}

func (ds DenominationSet) Contains(value int) bool {
	_, found := slices.BinarySearch(ds.values, value)
	return found
}

func (ds DenominationSet) Smallest() int {
	return ds.values[0]
}

// Values returns the denominations in ascending order.
func (ds DenominationSet) Values() []int {
	return slices.Clone(ds.values)
}
