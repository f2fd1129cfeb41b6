package stats

import (
	"strings"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

// Bucket is one of the mutually exclusive status categories used for
// aggregate counts.
type Bucket string

const (
	BucketNotAppliedYet      Bucket = "not_applied_yet"
	BucketApplicationStarted Bucket = "application_started"
	BucketInterview          Bucket = "interview"
	BucketOffer              Bucket = "offer"
	BucketRejection          Bucket = "rejection"
	BucketPending            Bucket = "pending"
)

// Counts holds per-bucket totals for a set of applications. The buckets plus
// Pending always sum to Total.
type Counts struct {
	Total              int `json:"total"`
	NotAppliedYet      int `json:"not_applied_yet"`
	ApplicationStarted int `json:"application_started"`
	Interviews         int `json:"interviews"`
	Offers             int `json:"offers"`
	Rejections         int `json:"rejections"`
	Pending            int `json:"pending"`
}

// ClassifyStatus maps free-form status text to a single bucket. Matching is
// case-insensitive and substring-based so legacy records with hand-typed
// statuses ("technical interview round 2") still classify. Terminal outcomes
// are checked before interview stages so a status mentioning both ("offer
// after interview") lands in one bucket deterministically.
func ClassifyStatus(status string) Bucket {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "not applied") || strings.Contains(s, "not yet"):
		return BucketNotAppliedYet
	case strings.Contains(s, "started"):
		return BucketApplicationStarted
	case strings.Contains(s, "offer") || strings.Contains(s, "accepted"):
		return BucketOffer
	case strings.Contains(s, "reject") || strings.Contains(s, "declined"):
		return BucketRejection
	case strings.Contains(s, "interview") || strings.Contains(s, "phone screen"):
		return BucketInterview
	default:
		return BucketPending
	}
}

// Classify counts applications per bucket. Each record is classified exactly
// once, so the counts are guaranteed to sum to the total and Pending can
// never go negative.
func Classify(apps []model.Application) Counts {
	c := Counts{Total: len(apps)}
	for _, app := range apps {
		switch ClassifyStatus(app.ApplicationStatus) {
		case BucketNotAppliedYet:
			c.NotAppliedYet++
		case BucketApplicationStarted:
			c.ApplicationStarted++
		case BucketInterview:
			c.Interviews++
		case BucketOffer:
			c.Offers++
		case BucketRejection:
			c.Rejections++
		default:
			c.Pending++
		}
	}
	return c
}
