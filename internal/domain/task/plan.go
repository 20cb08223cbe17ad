package task

import (
	"time"

	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
)

// Plan is the set of changes that closes the gap between the task instances
// that should exist for a day and the ones that do.
type Plan struct {
	Inserts   []Instance
	DeleteIDs []string
}

func (p Plan) IsEmpty() bool {
	return len(p.Inserts) == 0 && len(p.DeleteIDs) == 0
}

type instanceKey struct {
	staffID string
	title   string
}

// BuildPlan computes the reconcile plan for one calendar day. For every
// staff member, templates whose station filter matches produce a desired
// (staffID, title) pair; pairs without an existing instance become inserts,
// and existing incomplete instances without a matching template become
// deletes. Completed instances are never deleted. Running the resulting
// plan and building it again yields an empty plan.
func BuildPlan(templates []Template, roster []staff.Member, existing []Instance, day time.Time) Plan {
	day = DayKey(day)

	desired := map[instanceKey]Template{}
	for _, tpl := range templates {
		filter := ParseStationFilter(tpl.Station)
		for _, member := range roster {
			if filter.Matches(member.Station) {
				desired[instanceKey{staffID: member.ID, title: tpl.Title}] = tpl
			}
		}
	}

	have := map[instanceKey]bool{}
	for _, inst := range existing {
		have[instanceKey{staffID: inst.AssignedTo, title: inst.Title}] = true
	}

	plan := Plan{}

	for _, member := range roster {
		for _, tpl := range templates {
			key := instanceKey{staffID: member.ID, title: tpl.Title}
			if _, ok := desired[key]; !ok {
				continue
			}
			if have[key] {
				continue
			}

			plan.Inserts = append(plan.Inserts, Instance{
				AssignedTo:  member.ID,
				Title:       tpl.Title,
				Description: tpl.Description,
				Day:         day,
			})
			have[key] = true
		}
	}

	for _, inst := range existing {
		if inst.IsCompleted {
			continue
		}
		if _, ok := desired[instanceKey{staffID: inst.AssignedTo, title: inst.Title}]; !ok {
			plan.DeleteIDs = append(plan.DeleteIDs, inst.ID)
		}
	}

	return plan
}
