package analyze

import (
	"math"
	"sort"
)

// AllUsers is the user id of the synthetic summary row appended to
// every report. It aggregates the union of all per-user values, not
// the mean of the per-user means.
const AllUsers = "ALL_USERS"

// roundMean returns the arithmetic mean rounded to 2 decimal places,
// or nil for an empty sample. Exact ties round to even (3.125 -> 3.12),
// keeping these averages byte-compatible with earlier campaign reports.
func roundMean(vals []int) *float64 {
	if len(vals) == 0 {
		return nil
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	avg := math.RoundToEven(float64(sum)/float64(len(vals))*100) / 100
	return &avg
}

// sortedUserIDs returns the accumulator's user ids in ascending order.
func sortedUserIDs[T any](users map[string]T) []string {
	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
