package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSummarizeEmptyCollection(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.InterviewRate)
	assert.Zero(t, s.ResponseRate)
	assert.Zero(t, s.OfferRate)
	assert.Zero(t, s.RejectionRate)
	assert.Zero(t, s.InterviewToOfferRate)
	assert.Zero(t, s.AverageResponseTimeDays)
}

func TestSummarizeRates(t *testing.T) {
	apps := appsWithStatuses(
		"Interview", "Interview", "Offer", "Rejected", "Applied", "Applied",
	)

	s := Summarize(apps)

	// 2 interviews, 1 offer, 1 rejection out of 6
	assert.InDelta(t, 33.3, s.InterviewRate, 0.001)
	assert.InDelta(t, 66.7, s.ResponseRate, 0.001) // 4 responded of 6
	assert.InDelta(t, 16.7, s.OfferRate, 0.001)
	assert.InDelta(t, 25.0, s.RejectionRate, 0.001) // 1 rejection of 4 responses
	assert.InDelta(t, 50.0, s.InterviewToOfferRate, 0.001)
}

func TestSummarizeRatesWithinBounds(t *testing.T) {
	apps := appsWithStatuses("Offer", "Offer", "Rejected")
	s := Summarize(apps)

	for _, rate := range []float64{s.InterviewRate, s.ResponseRate, s.OfferRate, s.RejectionRate} {
		assert.GreaterOrEqual(t, rate, 0.0)
		assert.LessOrEqual(t, rate, 100.0)
	}
}

func TestResponseRateCountsHeardBackWithoutTerminalStatus(t *testing.T) {
	apps := []model.Application{
		{ApplicationStatus: "Applied", DateHeardBack: date(2024, time.March, 4)},
		{ApplicationStatus: "Applied"},
	}

	s := Summarize(apps)
	assert.InDelta(t, 50.0, s.ResponseRate, 0.001)
}

func TestAverageResponseTime(t *testing.T) {
	apps := []model.Application{
		{
			ApplicationStatus: "Rejected",
			ApplicationDate:   date(2024, time.January, 1),
			DateHeardBack:     date(2024, time.January, 8),
		},
	}

	s := Summarize(apps)
	assert.Equal(t, 7.0, s.AverageResponseTimeDays)
}

func TestAverageResponseTimeExcludesIncompleteRecords(t *testing.T) {
	apps := []model.Application{
		{
			ApplicationStatus: "Rejected",
			ApplicationDate:   date(2024, time.January, 1),
			DateHeardBack:     date(2024, time.January, 5),
		},
		// missing heard-back date: excluded from numerator and denominator
		{ApplicationStatus: "Applied", ApplicationDate: date(2024, time.January, 1)},
		// missing application date: excluded too
		{ApplicationStatus: "Rejected", DateHeardBack: date(2024, time.January, 20)},
	}

	s := Summarize(apps)
	assert.Equal(t, 4.0, s.AverageResponseTimeDays)
}

func TestAverageResponseTimeNoQualifyingRecords(t *testing.T) {
	apps := appsWithStatuses("Applied", "Interview")
	assert.Zero(t, Summarize(apps).AverageResponseTimeDays)
}

func TestFilterSince(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	apps := []model.Application{
		{CompanyName: "old", ApplicationDate: date(2024, time.May, 20)},
		{CompanyName: "boundary", ApplicationDate: date(2024, time.June, 1)},
		{CompanyName: "recent", ApplicationDate: date(2024, time.June, 10)},
		{CompanyName: "undated"},
	}

	got := FilterSince(apps, start)
	require.Len(t, got, 2)
	assert.Equal(t, "boundary", got[0].CompanyName)
	assert.Equal(t, "recent", got[1].CompanyName)
}

func TestTopCompanies(t *testing.T) {
	apps := []model.Application{
		{CompanyName: "Acme"}, {CompanyName: "Acme"}, {CompanyName: "Acme"},
		{CompanyName: "Globex"}, {CompanyName: "Globex"},
		{CompanyName: "Initech"},
		{CompanyName: "Hooli"},
	}

	got := TopCompanies(apps, 3)
	require.Len(t, got, 3)
	assert.Equal(t, CompanyCount{Company: "Acme", Count: 3}, got[0])
	assert.Equal(t, CompanyCount{Company: "Globex", Count: 2}, got[1])
	// ties break alphabetically
	assert.Equal(t, CompanyCount{Company: "Hooli", Count: 1}, got[2])
}

func TestRecentApplications(t *testing.T) {
	apps := []model.Application{
		{CompanyName: "mid", ApplicationDate: date(2024, time.March, 5)},
		{CompanyName: "undated"},
		{CompanyName: "newest", ApplicationDate: date(2024, time.April, 1)},
		{CompanyName: "oldest", ApplicationDate: date(2024, time.February, 1)},
	}

	got := RecentApplications(apps, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].CompanyName)
	assert.Equal(t, "mid", got[1].CompanyName)
	assert.Equal(t, "oldest", got[2].CompanyName)
}
