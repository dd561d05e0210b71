package domain

import "fmt"

// ComputeChange decomposes amount into coins from the denomination set using
// a greedy rule: at every step take the largest coin that still fits into the
// remaining amount. The result sums exactly to amount, contains only members
// of the set and is non-increasing. This is not a minimal-coin solver.
func ComputeChange(amount int, denominations DenominationSet) ([]int, error) {
	if amount < 0 {
		return nil, &ChangeComputationError{Msg: fmt.Sprintf("change amount must not be negative, got %d", amount)}
	}

	change := make([]int, 0)
	values := denominations.Values()
	sum := 0

	for sum < amount {
		coin := 0
		for i := len(values) - 1; i >= 0; i-- {
			if sum+values[i] <= amount {
				coin = values[i]
				break
			}
		}

		if coin == 0 {
			return nil, &ChangeComputationError{
				Msg: fmt.Sprintf("no denomination fits the remaining %d of %d", amount-sum, amount),
			}
		}

		change = append(change, coin)
		sum += coin
	}

	return change, nil
}
