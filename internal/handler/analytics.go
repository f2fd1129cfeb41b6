package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shaunfitzgarald/job-tracker/internal/access"
	"github.com/shaunfitzgarald/job-tracker/internal/stats"
	"github.com/shaunfitzgarald/job-tracker/pkg/response"
)

const (
	communityCacheKey = "analytics:community"
	topCompaniesLimit = 5
)

type communitySnapshot struct {
	Stats        stats.Summary        `json:"stats"`
	TopCompanies []stats.CompanyCount `json:"top_companies"`
}

// timeFrameStart maps the UI's time-frame names onto a start date.
func timeFrameStart(frame string, now time.Time) time.Time {
	switch frame {
	case "7days":
		return now.AddDate(0, 0, -7)
	case "90days":
		return now.AddDate(0, 0, -90)
	case "1year":
		return now.AddDate(-1, 0, 0)
	default: // 30days
		return now.AddDate(0, 0, -30)
	}
}

// Analytics returns the user's stats for the requested time frame next to
// community-wide stats computed over public records only.
func (app *Application) Analytics(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	ctx := c.Request.Context()

	mine, err := app.Repository.Application.ListByUser(ctx, claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("analytics fetch failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	frame := c.DefaultQuery("time_frame", "30days")
	windowed := stats.FilterSince(mine, timeFrameStart(frame, time.Now()))
	myStats := stats.Summarize(windowed)

	community, err := app.communityStats(c)
	if err != nil {
		app.Logger.Sugar().Errorw("community stats failed", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{
		"time_frame": frame,
		"my_stats":   myStats,
		"community":  community,
	})
}

// communityStats computes the public-record aggregate, serving a cached
// snapshot when one is fresh.
func (app *Application) communityStats(c *gin.Context) (communitySnapshot, error) {
	ctx := c.Request.Context()

	var snap communitySnapshot
	if err := app.Cache.GetJSON(ctx, communityCacheKey, &snap); err == nil {
		return snap, nil
	}

	public, err := app.Repository.Application.ListPublic(ctx)
	if err != nil {
		return communitySnapshot{}, err
	}

	snap = communitySnapshot{
		Stats:        stats.Summarize(public),
		TopCompanies: stats.TopCompanies(public, topCompaniesLimit),
	}

	if err := app.Cache.SetJSON(ctx, communityCacheKey, snap); err != nil {
		app.Logger.Sugar().Warnw("community cache write failed", "err", err)
	}
	return snap, nil
}

// invalidateCommunityCache drops the cached snapshot after a write that may
// change public records.
func (app *Application) invalidateCommunityCache(c *gin.Context) {
	app.Cache.Delete(c.Request.Context(), communityCacheKey)
}

// UserStats returns the status breakdown for another user's public records.
// The target must have opted into sharing their stats.
func (app *Application) UserStats(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	ctx := c.Request.Context()
	targetID := c.Param("id")

	target, err := app.Repository.User.GetByID(ctx, targetID)
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}
	if target.ID != claims.UserID && !target.ShareStats {
		response.Forbidden(c, "this user does not share their stats")
		return
	}

	apps, err := app.Repository.Application.ListByUser(ctx, target.ID)
	if err != nil {
		app.Logger.Sugar().Errorw("user stats fetch failed", "target", targetID, "err", err)
		response.InternalError(c, "")
		return
	}

	// a viewer other than the owner only sees public records
	if target.ID != claims.UserID {
		apps = access.PublicOnly(apps)
	}

	response.OK(c, gin.H{
		"user":  target.Public(),
		"stats": stats.Summarize(apps),
	})
}
