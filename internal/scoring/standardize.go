package scoring

import "sort"

const (
	// neutralTScore is returned for dimensions without a table. Callers
	// should treat hitting it as a data problem, not a clinical result.
	neutralTScore = 50

	// highCeilingTScore is the score assigned below the tabulated range
	// when the table's own best value does not exceed 70.
	highCeilingTScore = 75

	// lowFloorTScore is the score assigned above the tabulated range when
	// the table's own worst value is not already under 20.
	lowFloorTScore = 10
)

// HasTable reports whether a dimension has a standardization table.
func HasTable(dimension string) bool {
	_, ok := tScoreTables[dimension]
	return ok
}

// Standardize converts a dimension's raw sum into its T-score. Lower raw
// sums mean better performance and map to higher T-scores.
//
// Exact keys return the tabulated value. Sums at or below the tabulated
// range take the minimum key's value if it exceeds 70, else the fixed 75
// ceiling; sums at or above the range take the maximum key's value if it is
// under 20, else the fixed 10 floor. Gaps inside the range resolve to the
// nearest key, and an exact distance tie keeps the lower key (keys scanned
// ascending, first match wins).
func Standardize(dimension string, rawSum int) int {
	table, ok := tScoreTables[dimension]
	if !ok {
		return neutralTScore
	}
	if t, ok := table[rawSum]; ok {
		return t
	}

	keys := make([]int, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	minRaw, maxRaw := keys[0], keys[len(keys)-1]
	switch {
	case rawSum <= minRaw:
		if t := table[minRaw]; t > 70 {
			return t
		}
		return highCeilingTScore
	case rawSum >= maxRaw:
		if t := table[maxRaw]; t < 20 {
			return t
		}
		return lowFloorTScore
	}

	closest := keys[0]
	for _, k := range keys[1:] {
		if abs(k-rawSum) < abs(closest-rawSum) {
			closest = k
		}
	}
	return table[closest]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
