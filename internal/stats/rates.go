package stats

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

// Summary is the derived view computed for a set of applications. It is never
// persisted; callers recompute it from fetched records.
type Summary struct {
	Counts
	InterviewRate           float64 `json:"interview_rate"`
	ResponseRate            float64 `json:"response_rate"`
	OfferRate               float64 `json:"offer_rate"`
	RejectionRate           float64 `json:"rejection_rate"`
	InterviewToOfferRate    float64 `json:"interview_to_offer_rate"`
	AverageResponseTimeDays float64 `json:"average_response_time_days"`
}

// Summarize classifies the applications and derives every rate from the
// result. Every rate independently guards its denominator and reports 0 when
// it would be undefined.
func Summarize(apps []model.Application) Summary {
	counts := Classify(apps)
	s := Summary{Counts: counts}

	responses := countResponses(apps)

	s.InterviewRate = percent(counts.Interviews, counts.Total)
	s.ResponseRate = percent(responses, counts.Total)
	s.OfferRate = percent(counts.Offers, counts.Total)
	s.RejectionRate = percent(counts.Rejections, responses)
	s.InterviewToOfferRate = percent(counts.Offers, counts.Interviews)
	s.AverageResponseTimeDays = averageResponseDays(apps)
	return s
}

// countResponses counts records that got any response: an interview-ish or
// terminal status, or an explicit heard-back date.
func countResponses(apps []model.Application) int {
	return lo.CountBy(apps, func(app model.Application) bool {
		switch ClassifyStatus(app.ApplicationStatus) {
		case BucketInterview, BucketOffer, BucketRejection:
			return true
		}
		return app.DateHeardBack != nil
	})
}

// averageResponseDays is the mean response time over records carrying both an
// application date and a heard-back date. Each gap rounds up to whole days,
// so same-week responses still register. Records missing either date are
// excluded entirely; no qualifying records means 0.
func averageResponseDays(apps []model.Application) float64 {
	var totalDays, qualifying int
	for _, app := range apps {
		if app.ApplicationDate == nil || app.DateHeardBack == nil {
			continue
		}
		gap := app.DateHeardBack.Sub(*app.ApplicationDate)
		if gap < 0 {
			gap = -gap
		}
		totalDays += int(math.Ceil(gap.Hours() / 24))
		qualifying++
	}
	if qualifying == 0 {
		return 0
	}
	return round1(float64(totalDays) / float64(qualifying))
}

// percent returns part/whole as a percentage rounded to one decimal place,
// or 0 when whole is 0.
func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FilterSince keeps applications whose application date falls on or after
// start. Records without an application date are dropped, matching the
// behaviour of time-framed analytics views.
func FilterSince(apps []model.Application, start time.Time) []model.Application {
	return lo.Filter(apps, func(app model.Application, _ int) bool {
		return app.ApplicationDate != nil && !app.ApplicationDate.Before(start)
	})
}

// CompanyCount pairs a company with how many applications it received.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// TopCompanies returns the most-applied-to companies, descending by count,
// capped at limit. Ties break alphabetically to keep output stable.
func TopCompanies(apps []model.Application, limit int) []CompanyCount {
	byCompany := lo.CountValuesBy(apps, func(app model.Application) string {
		return app.CompanyName
	})

	out := make([]CompanyCount, 0, len(byCompany))
	for company, count := range byCompany {
		out = append(out, CompanyCount{Company: company, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Company < out[j].Company
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecentApplications returns the newest applications by application date,
// capped at limit. Records without a date sort last.
func RecentApplications(apps []model.Application, limit int) []model.Application {
	sorted := make([]model.Application, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].ApplicationDate, sorted[j].ApplicationDate
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return di.After(*dj)
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
