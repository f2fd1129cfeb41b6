package planner

import (
	"errors"
	"sort"
	"time"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

// ErrInvalidGoal is returned when a distribution is requested with a daily
// goal below 1; spreading records over days needs a positive per-day cap.
var ErrInvalidGoal = errors.New("daily goal must be at least 1")

// Assignment is one record's newly computed planned date. The caller persists
// assignments individually; the computation itself writes nothing.
type Assignment struct {
	Job         model.PlannedApplication `json:"job"`
	PlannedDate time.Time                `json:"planned_date"`
}

// Plan is the result of an auto-distribution pass.
type Plan struct {
	Assignments []Assignment `json:"assignments"`
	DaysNeeded  int          `json:"days_needed"`
}

var priorityOrder = map[model.Priority]int{
	model.PriorityHigh:   0,
	model.PriorityMedium: 1,
	model.PriorityLow:    2,
}

// priorityRank treats an unset or unknown priority as Medium.
func priorityRank(p model.Priority) int {
	if rank, ok := priorityOrder[p]; ok {
		return rank
	}
	return priorityOrder[model.PriorityMedium]
}

// Eligible selects planned records that need a new date: those with no
// planned date, or with one already behind the start of today.
func Eligible(jobs []model.PlannedApplication, now time.Time) []model.PlannedApplication {
	today := startOfDay(now)
	var out []model.PlannedApplication
	for _, job := range jobs {
		if job.Status != model.PlannedStatusPlanned {
			continue
		}
		if job.PlannedDate == nil || job.PlannedDate.Before(today) {
			out = append(out, job)
		}
	}
	return out
}

// Distribute spreads the eligible records over consecutive days starting
// today, at most goal per day, highest priority first. The sort is stable, so
// records of equal priority keep their incoming order and the result is
// deterministic. With nothing eligible it returns an empty plan.
func Distribute(jobs []model.PlannedApplication, goal int, now time.Time) (Plan, error) {
	if goal < 1 {
		return Plan{}, ErrInvalidGoal
	}

	eligible := Eligible(jobs, now)
	if len(eligible) == 0 {
		return Plan{}, nil
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return priorityRank(eligible[i].Priority) < priorityRank(eligible[j].Priority)
	})

	today := startOfDay(now)
	plan := Plan{
		Assignments: make([]Assignment, 0, len(eligible)),
		DaysNeeded:  (len(eligible) + goal - 1) / goal,
	}
	for i, job := range eligible {
		plan.Assignments = append(plan.Assignments, Assignment{
			Job:         job,
			PlannedDate: today.AddDate(0, 0, i/goal),
		})
	}
	return plan, nil
}
