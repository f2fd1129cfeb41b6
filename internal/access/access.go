// Package access holds the visibility rules for application records. The
// predicates take the viewer id explicitly so callers can evaluate them for
// any identity without touching session state.
package access

import (
	"github.com/samber/lo"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

// CanView reports whether viewerID may see the record: the owner always can,
// anyone can when it is public, and explicitly shared users can otherwise.
func CanView(app model.Application, viewerID string) bool {
	if app.UserID == viewerID || app.IsPublic {
		return true
	}
	return isSharedWith(app, viewerID)
}

// CanEdit reports whether viewerID may modify the record. Sharing grants
// collaborator edit access; public visibility alone does not.
func CanEdit(app model.Application, viewerID string) bool {
	return app.UserID == viewerID || isSharedWith(app, viewerID)
}

// FilterViewable keeps only the records viewerID may see.
func FilterViewable(apps []model.Application, viewerID string) []model.Application {
	return lo.Filter(apps, func(app model.Application, _ int) bool {
		return CanView(app, viewerID)
	})
}

// PublicOnly keeps the records opted into community aggregates. This gate is
// coarser than per-record sharing: viewer identity is irrelevant.
func PublicOnly(apps []model.Application) []model.Application {
	return lo.Filter(apps, func(app model.Application, _ int) bool {
		return app.IsPublic
	})
}

func isSharedWith(app model.Application, viewerID string) bool {
	return lo.SomeBy(app.SharedWith, func(u model.SharedUser) bool {
		return u.ID == viewerID
	})
}
