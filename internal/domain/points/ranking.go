package points

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ComputeRanking sorts ledger rows into a monthly ranking and attaches
// rank-based rewards. Ordering: points descending, then goodDeeds
// descending, then staff ID ascending so recomputation is deterministic.
func ComputeRanking(rows []MonthlyPoints, rewardFor func(rank int) decimal.Decimal) []RankEntry {
	sorted := make([]MonthlyPoints, len(rows))
	copy(sorted, rows)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		if sorted[i].GoodDeeds != sorted[j].GoodDeeds {
			return sorted[i].GoodDeeds > sorted[j].GoodDeeds
		}
		return sorted[i].StaffID < sorted[j].StaffID
	})

	entries := make([]RankEntry, 0, len(sorted))
	for i, row := range sorted {
		rank := i + 1

		var staffName string
		if row.StaffName != nil {
			staffName = *row.StaffName
		}

		entries = append(entries, RankEntry{
			Rank:      rank,
			StaffID:   row.StaffID,
			StaffName: staffName,
			Points:    row.Points,
			GoodDeeds: row.GoodDeeds,
			BadDeeds:  row.BadDeeds,
			Reward:    rewardFor(rank),
		})
	}

	return entries
}
