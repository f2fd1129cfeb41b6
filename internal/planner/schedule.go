package planner

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

// ScheduleDay lists the planned applications due on one calendar day.
type ScheduleDay struct {
	Date         time.Time                  `json:"date"`
	Applications []model.PlannedApplication `json:"applications"`
}

// Schedule groups still-planned records by their planned calendar day,
// earliest day first. Records without a planned date come back separately so
// the caller can show an "unscheduled" section.
func Schedule(jobs []model.PlannedApplication) (days []ScheduleDay, unscheduled []model.PlannedApplication) {
	planned := lo.Filter(jobs, func(job model.PlannedApplication, _ int) bool {
		return job.Status == model.PlannedStatusPlanned
	})

	unscheduled = lo.Filter(planned, func(job model.PlannedApplication, _ int) bool {
		return job.PlannedDate == nil
	})

	dated := lo.Filter(planned, func(job model.PlannedApplication, _ int) bool {
		return job.PlannedDate != nil
	})
	byDay := lo.GroupBy(dated, func(job model.PlannedApplication) time.Time {
		return startOfDay(*job.PlannedDate)
	})

	days = make([]ScheduleDay, 0, len(byDay))
	for day, dayJobs := range byDay {
		days = append(days, ScheduleDay{Date: day, Applications: dayJobs})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days, unscheduled
}
