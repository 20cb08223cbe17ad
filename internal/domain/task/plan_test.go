package task

import (
	"testing"
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
)

func testRoster() []staff.Member {
	return []staff.Member{
		{ID: "s1", FullName: "Aina", Station: "Barista"},
		{ID: "s2", FullName: "Farid", Station: "Cashier"},
	}
}

func testDay() time.Time {
	return time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)
}

func applyPlan(existing []Instance, plan Plan) []Instance {
	deleted := map[string]bool{}
	for _, id := range plan.DeleteIDs {
		deleted[id] = true
	}

	next := []Instance{}
	for _, inst := range existing {
		if !deleted[inst.ID] {
			next = append(next, inst)
		}
	}
	for i, inst := range plan.Inserts {
		inst.ID = "new-" + string(rune('a'+i))
		next = append(next, inst)
	}

	return next
}

func TestBuildPlan_InsertsForMatchingStations(t *testing.T) {
	templates := []Template{
		{Title: "Open register", Station: "Cashier"},
		{Title: "Clean machine", Station: "Barista"},
		{Title: "Sweep floor", Station: "Semua Staff"},
	}

	plan := BuildPlan(templates, testRoster(), nil, testDay())

	assert.Empty(t, plan.DeleteIDs)
	assert.Len(t, plan.Inserts, 4)

	titlesByStaff := map[string][]string{}
	for _, inst := range plan.Inserts {
		titlesByStaff[inst.AssignedTo] = append(titlesByStaff[inst.AssignedTo], inst.Title)
	}
	assert.ElementsMatch(t, []string{"Clean machine", "Sweep floor"}, titlesByStaff["s1"])
	assert.ElementsMatch(t, []string{"Open register", "Sweep floor"}, titlesByStaff["s2"])
}

func TestBuildPlan_DeletesOrphanedIncomplete(t *testing.T) {
	existing := []Instance{
		{ID: "i1", AssignedTo: "s1", Title: "Clean machine"},
		{ID: "i2", AssignedTo: "s1", Title: "Removed task", IsCompleted: false},
		{ID: "i3", AssignedTo: "s2", Title: "Removed task", IsCompleted: true},
	}
	templates := []Template{
		{Title: "Clean machine", Station: "Barista"},
	}

	plan := BuildPlan(templates, testRoster(), existing, testDay())

	assert.Empty(t, plan.Inserts)
	// Completed instances survive template removal.
	assert.Equal(t, []string{"i2"}, plan.DeleteIDs)
}

func TestBuildPlan_Idempotent(t *testing.T) {
	templates := []Template{
		{Title: "Open register", Station: "Cashier"},
		{Title: "Sweep floor", Station: "staff"},
	}
	existing := []Instance{
		{ID: "i1", AssignedTo: "s1", Title: "Stale task"},
	}

	first := BuildPlan(templates, testRoster(), existing, testDay())
	assert.False(t, first.IsEmpty())

	second := BuildPlan(templates, testRoster(), applyPlan(existing, first), testDay())
	assert.True(t, second.IsEmpty())
}

func TestBuildPlan_StationChangeSwapsTasks(t *testing.T) {
	templates := []Template{
		{Title: "Open register", Station: "Cashier"},
		{Title: "Clean machine", Station: "Barista"},
	}
	roster := testRoster()

	existing := applyPlan(nil, BuildPlan(templates, roster, nil, testDay()))

	// s1 moves from Barista to Cashier.
	roster[0].Station = "Cashier"
	plan := BuildPlan(templates, roster, existing, testDay())

	assert.Len(t, plan.Inserts, 1)
	assert.Equal(t, "s1", plan.Inserts[0].AssignedTo)
	assert.Equal(t, "Open register", plan.Inserts[0].Title)
	assert.Len(t, plan.DeleteIDs, 1)
}
