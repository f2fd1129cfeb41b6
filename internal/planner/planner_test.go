package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

var noon = time.Date(2024, time.July, 10, 12, 30, 0, 0, time.UTC)

func plannedOn(t time.Time, status model.PlannedStatus) model.PlannedApplication {
	return model.PlannedApplication{PlannedDate: &t, Status: status}
}

func TestTodayProgress(t *testing.T) {
	jobs := []model.PlannedApplication{
		plannedOn(noon.Add(-3*time.Hour), model.PlannedStatusApplied),
		plannedOn(noon.Add(2*time.Hour), model.PlannedStatusApplied),
		plannedOn(noon, model.PlannedStatusPlanned),
		plannedOn(noon.AddDate(0, 0, 1), model.PlannedStatusApplied), // tomorrow
		plannedOn(noon.AddDate(0, 0, -1), model.PlannedStatusApplied), // yesterday
		{Status: model.PlannedStatusApplied},                          // no date
	}

	p := TodayProgress(jobs, 4, noon)

	assert.Equal(t, 3, p.PlannedToday)
	assert.Equal(t, 2, p.CompletedToday)
	assert.Equal(t, 50.0, p.ProgressPercent)
}

func TestTodayProgressGuardsNonPositiveGoal(t *testing.T) {
	jobs := []model.PlannedApplication{
		plannedOn(noon, model.PlannedStatusApplied),
	}

	assert.Zero(t, TodayProgress(jobs, 0, noon).ProgressPercent)
	assert.Zero(t, TodayProgress(jobs, -3, noon).ProgressPercent)
}

func appliedOn(t time.Time, company string) model.PlannedApplication {
	return model.PlannedApplication{
		CompanyName: company,
		Status:      model.PlannedStatusApplied,
		AppliedDate: &t,
	}
}

func TestHistoryGroupsByCalendarDay(t *testing.T) {
	day1 := time.Date(2024, time.July, 8, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, time.July, 9, 18, 0, 0, 0, time.UTC)

	jobs := []model.PlannedApplication{
		appliedOn(day1, "a"),
		appliedOn(day1.Add(5*time.Hour), "b"), // same calendar day as a
		appliedOn(day2, "c"),
		plannedOn(day2, model.PlannedStatusPlanned), // not applied, ignored
		{Status: model.PlannedStatusApplied},        // applied but no date, ignored
	}

	history := History(jobs)

	require.Len(t, history, 2)
	// newest day first
	assert.Equal(t, 1, history[0].Count)
	assert.Equal(t, "c", history[0].Applications[0].CompanyName)
	assert.Equal(t, 2, history[1].Count)
}

func TestAveragePerDay(t *testing.T) {
	history := []DaySummary{{Count: 2}, {Count: 4}}
	assert.Equal(t, 3.0, AveragePerDay(history))
	assert.Zero(t, AveragePerDay(nil))
}

func TestScheduleGroupsByPlannedDay(t *testing.T) {
	day1 := noon.AddDate(0, 0, 1)
	day1Evening := day1.Add(6 * time.Hour)
	day2 := noon.AddDate(0, 0, 2)

	jobs := []model.PlannedApplication{
		plannedOn(day2, model.PlannedStatusPlanned),
		plannedOn(day1, model.PlannedStatusPlanned),
		plannedOn(day1Evening, model.PlannedStatusPlanned),
		plannedOn(day1, model.PlannedStatusApplied), // applied, excluded
		{Status: model.PlannedStatusPlanned},        // undated
	}

	days, unscheduled := Schedule(jobs)

	require.Len(t, days, 2)
	assert.True(t, days[0].Date.Before(days[1].Date))
	assert.Len(t, days[0].Applications, 2)
	assert.Len(t, days[1].Applications, 1)
	assert.Len(t, unscheduled, 1)
}

func plannedJob(id string, priority model.Priority, plannedDate *time.Time) model.PlannedApplication {
	return model.PlannedApplication{
		ID:          id,
		Priority:    priority,
		PlannedDate: plannedDate,
		Status:      model.PlannedStatusPlanned,
	}
}

func TestEligible(t *testing.T) {
	yesterday := noon.AddDate(0, 0, -1)
	tomorrow := noon.AddDate(0, 0, 1)

	jobs := []model.PlannedApplication{
		plannedJob("undated", model.PriorityHigh, nil),
		plannedJob("overdue", model.PriorityLow, &yesterday),
		plannedJob("future", model.PriorityHigh, &tomorrow),
		{ID: "applied", Status: model.PlannedStatusApplied},
		{ID: "skipped", Status: model.PlannedStatusSkipped},
	}

	eligible := Eligible(jobs, noon)

	require.Len(t, eligible, 2)
	assert.Equal(t, "undated", eligible[0].ID)
	assert.Equal(t, "overdue", eligible[1].ID)
}

func TestEligibleExcludesToday(t *testing.T) {
	earlier := noon.Add(-4 * time.Hour) // today, already past but same calendar day
	jobs := []model.PlannedApplication{
		plannedJob("today", model.PriorityHigh, &earlier),
	}
	assert.Empty(t, Eligible(jobs, noon))
}

func TestDistributeSpreadsByPriority(t *testing.T) {
	priorities := []model.Priority{
		model.PriorityLow, model.PriorityHigh, model.PriorityMedium,
		model.PriorityHigh, model.PriorityLow, model.PriorityMedium,
		model.PriorityHigh,
	}
	jobs := make([]model.PlannedApplication, 0, len(priorities))
	for i, p := range priorities {
		jobs = append(jobs, plannedJob(string(rune('a'+i)), p, nil))
	}

	plan, err := Distribute(jobs, 3, noon)
	require.NoError(t, err)
	require.Len(t, plan.Assignments, 7)
	assert.Equal(t, 3, plan.DaysNeeded)

	today := startOfDay(noon)

	// the three High records fill day 0 in their original relative order
	assert.Equal(t, "b", plan.Assignments[0].Job.ID)
	assert.Equal(t, "d", plan.Assignments[1].Job.ID)
	assert.Equal(t, "g", plan.Assignments[2].Job.ID)
	for _, a := range plan.Assignments[:3] {
		assert.True(t, a.PlannedDate.Equal(today))
	}

	// Medium next, then Low, with at most 3 per day
	assert.Equal(t, "c", plan.Assignments[3].Job.ID)
	assert.Equal(t, "f", plan.Assignments[4].Job.ID)
	assert.Equal(t, "a", plan.Assignments[5].Job.ID)
	assert.Equal(t, "e", plan.Assignments[6].Job.ID)

	perDay := map[time.Time]int{}
	for _, a := range plan.Assignments {
		perDay[a.PlannedDate]++
	}
	assert.Equal(t, 3, perDay[today])
	assert.Equal(t, 3, perDay[today.AddDate(0, 0, 1)])
	assert.Equal(t, 1, perDay[today.AddDate(0, 0, 2)])
}

func TestDistributeNoEligibleRecordsIsNoOp(t *testing.T) {
	future := noon.AddDate(0, 0, 3)
	jobs := []model.PlannedApplication{
		plannedJob("future", model.PriorityHigh, &future),
	}

	plan, err := Distribute(jobs, 3, noon)
	require.NoError(t, err)
	assert.Empty(t, plan.Assignments)
	assert.Zero(t, plan.DaysNeeded)
}

func TestDistributeRejectsNonPositiveGoal(t *testing.T) {
	jobs := []model.PlannedApplication{
		plannedJob("x", model.PriorityHigh, nil),
	}

	_, err := Distribute(jobs, 0, noon)
	assert.ErrorIs(t, err, ErrInvalidGoal)

	_, err = Distribute(jobs, -1, noon)
	assert.ErrorIs(t, err, ErrInvalidGoal)
}

func TestDistributeTreatsUnknownPriorityAsMedium(t *testing.T) {
	jobs := []model.PlannedApplication{
		plannedJob("blank", "", nil),
		plannedJob("high", model.PriorityHigh, nil),
		plannedJob("low", model.PriorityLow, nil),
	}

	plan, err := Distribute(jobs, 3, noon)
	require.NoError(t, err)
	assert.Equal(t, "high", plan.Assignments[0].Job.ID)
	assert.Equal(t, "blank", plan.Assignments[1].Job.ID)
	assert.Equal(t, "low", plan.Assignments[2].Job.ID)
}
