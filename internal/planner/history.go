package planner

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

// DaySummary aggregates the applications submitted on one calendar day.
type DaySummary struct {
	Date         time.Time                  `json:"date"`
	Applications []model.PlannedApplication `json:"applications"`
	Count        int                        `json:"count"`
}

// History groups applied planned applications by the calendar day they were
// applied on, newest day first. Records without an applied date are skipped.
func History(jobs []model.PlannedApplication) []DaySummary {
	applied := lo.Filter(jobs, func(job model.PlannedApplication, _ int) bool {
		return job.Status == model.PlannedStatusApplied && job.AppliedDate != nil
	})

	byDay := lo.GroupBy(applied, func(job model.PlannedApplication) time.Time {
		return startOfDay(*job.AppliedDate)
	})

	out := make([]DaySummary, 0, len(byDay))
	for day, dayJobs := range byDay {
		out = append(out, DaySummary{Date: day, Applications: dayJobs, Count: len(dayJobs)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// AveragePerDay is the mean number of applications over the days represented
// in the history. An empty history averages to 0.
func AveragePerDay(history []DaySummary) float64 {
	if len(history) == 0 {
		return 0
	}
	total := lo.SumBy(history, func(d DaySummary) int { return d.Count })
	return math.Round(float64(total)/float64(len(history))*10) / 10
}
