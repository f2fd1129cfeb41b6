package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

func TestCanView(t *testing.T) {
	private := model.Application{UserID: "owner"}
	public := model.Application{UserID: "owner", IsPublic: true}
	shared := model.Application{
		UserID:     "owner",
		SharedWith: []model.SharedUser{{ID: "friend"}},
	}

	cases := []struct {
		name   string
		app    model.Application
		viewer string
		want   bool
	}{
		{"owner sees private", private, "owner", true},
		{"stranger blocked from private", private, "stranger", false},
		{"anyone sees public", public, "stranger", true},
		{"shared user sees record", shared, "friend", true},
		{"unshared user blocked", shared, "stranger", false},
		{"owner sees shared record", shared, "owner", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanView(tc.app, tc.viewer))
		})
	}
}

func TestCanEditPublicDoesNotGrantEdit(t *testing.T) {
	public := model.Application{UserID: "owner", IsPublic: true}

	assert.True(t, CanEdit(public, "owner"))
	assert.False(t, CanEdit(public, "stranger"))
}

func TestCanEditSharedUser(t *testing.T) {
	shared := model.Application{
		UserID:     "owner",
		SharedWith: []model.SharedUser{{ID: "collaborator"}},
	}

	assert.True(t, CanEdit(shared, "collaborator"))
}

func TestFilterViewable(t *testing.T) {
	apps := []model.Application{
		{ID: "1", UserID: "me"},
		{ID: "2", UserID: "other"},
		{ID: "3", UserID: "other", IsPublic: true},
		{ID: "4", UserID: "other", SharedWith: []model.SharedUser{{ID: "me"}}},
	}

	got := FilterViewable(apps, "me")

	ids := make([]string, 0, len(got))
	for _, app := range got {
		ids = append(ids, app.ID)
	}
	assert.Equal(t, []string{"1", "3", "4"}, ids)
}

func TestPublicOnlyIgnoresSharing(t *testing.T) {
	apps := []model.Application{
		{ID: "1", IsPublic: true},
		{ID: "2", SharedWith: []model.SharedUser{{ID: "me"}}},
	}

	got := PublicOnly(apps)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
