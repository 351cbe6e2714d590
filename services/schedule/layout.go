package schedule

import (
	"sort"

	"fairway/models"
)

// Layout assigns each block a (Column, TotalColumns) pair so that no two
// blocks sharing a column overlap in time when rendered in one calendar
// column. Input order is not mutated; the returned slice is a sorted,
// annotated copy.
//
// Grouping is by transitive overlap, not minimum graph coloring: a chain
// A-B-C where A and C never touch still spends three columns on all three.
// Column counts are a user-facing contract, so this stays the deliberate
// trade-off it was rather than getting quietly optimized.
func Layout(blocks []models.ScheduleBlock) []models.ScheduleBlock {
	if len(blocks) == 0 {
		return nil
	}

	sorted := make([]models.ScheduleBlock, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	// groups hold indices into sorted, in placement order.
	var groups [][]int
	for i, blk := range sorted {
		var hits []int
		for gi, group := range groups {
			for _, mi := range group {
				if Overlaps(blk.Start, blk.End, sorted[mi].Start, sorted[mi].End) {
					hits = append(hits, gi)
					break
				}
			}
		}

		switch len(hits) {
		case 0:
			groups = append(groups, []int{i})
		case 1:
			groups[hits[0]] = append(groups[hits[0]], i)
		default:
			// The new block bridges several groups; merge them so the
			// one-block-one-group invariant holds.
			merged := groups[hits[0]]
			for _, gi := range hits[1:] {
				merged = append(merged, groups[gi]...)
			}
			merged = append(merged, i)
			kept := groups[:0]
			for gi, group := range groups {
				if !containsInt(hits, gi) {
					kept = append(kept, group)
				}
			}
			groups = append(kept, merged)
		}
	}

	for _, group := range groups {
		sort.Ints(group) // back to sorted-start order after merges
		for col, mi := range group {
			sorted[mi].Column = col
			sorted[mi].TotalColumns = len(group)
		}
	}

	return sorted
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
