// Package planner derives daily-goal progress, application history and
// planned-date schedules from a user's planned applications. Everything here
// is pure computation over already-fetched records; persistence stays with
// the caller.
package planner

import (
	"math"
	"time"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

// DefaultDailyGoal is used when a user has no saved settings.
const DefaultDailyGoal = 5

// Progress reports how far a user has got towards today's application goal.
type Progress struct {
	Goal            int     `json:"goal"`
	PlannedToday    int     `json:"planned_today"`
	CompletedToday  int     `json:"completed_today"`
	ProgressPercent float64 `json:"progress_percent"`
}

// TodayProgress counts planned applications scheduled for the calendar day of
// now and how many of those were applied to. A non-positive goal yields 0%
// rather than a division error.
func TodayProgress(jobs []model.PlannedApplication, goal int, now time.Time) Progress {
	p := Progress{Goal: goal}
	for _, job := range jobs {
		if job.PlannedDate == nil || !sameDay(*job.PlannedDate, now) {
			continue
		}
		p.PlannedToday++
		if job.Status == model.PlannedStatusApplied {
			p.CompletedToday++
		}
	}
	if goal > 0 {
		p.ProgressPercent = math.Round(float64(p.CompletedToday)/float64(goal)*1000) / 10
	}
	return p
}

// sameDay compares calendar dates in a's location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay zeroes the time of day, keeping the location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
