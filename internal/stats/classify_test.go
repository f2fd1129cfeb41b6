package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

func appsWithStatuses(statuses ...string) []model.Application {
	apps := make([]model.Application, 0, len(statuses))
	for _, s := range statuses {
		apps = append(apps, model.Application{ApplicationStatus: s})
	}
	return apps
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status string
		want   Bucket
	}{
		{"Not Applied Yet", BucketNotAppliedYet},
		{"Application Started", BucketApplicationStarted},
		{"Applied", BucketPending},
		{"Phone Screen", BucketInterview},
		{"Interview", BucketInterview},
		{"Technical Interview", BucketInterview},
		{"Offer", BucketOffer},
		{"Accepted", BucketOffer},
		{"Rejected", BucketRejection},
		{"Declined", BucketRejection},
		// legacy free-form text still classifies
		{"technical interview round 2", BucketInterview},
		{"REJECTED after onsite", BucketRejection},
		{"waiting to hear back", BucketPending},
		{"", BucketPending},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyStatus(tc.status), "status %q", tc.status)
	}
}

func TestClassifyStatusOverlapIsDeterministic(t *testing.T) {
	// text matching more than one bucket goes to exactly one
	assert.Equal(t, BucketOffer, ClassifyStatus("offer after final interview"))
	assert.Equal(t, BucketRejection, ClassifyStatus("rejected after interview"))
}

func TestClassifyCountsSumToTotal(t *testing.T) {
	apps := appsWithStatuses(
		"Not Applied Yet", "Application Started", "Applied", "Phone Screen",
		"Interview", "Technical Interview", "Offer", "Rejected", "Accepted",
		"Declined", "offer after final interview", "something odd",
	)

	c := Classify(apps)

	sum := c.NotAppliedYet + c.ApplicationStarted + c.Interviews + c.Offers + c.Rejections + c.Pending
	assert.Equal(t, c.Total, sum)
	assert.Equal(t, len(apps), c.Total)
	assert.GreaterOrEqual(t, c.Pending, 0)
}

func TestClassifyEmpty(t *testing.T) {
	c := Classify(nil)
	assert.Equal(t, Counts{}, c)
}
