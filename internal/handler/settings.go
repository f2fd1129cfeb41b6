package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shaunfitzgarald/job-tracker/internal/planner"
	"github.com/shaunfitzgarald/job-tracker/internal/repository"
	"github.com/shaunfitzgarald/job-tracker/pkg/model"
	"github.com/shaunfitzgarald/job-tracker/pkg/response"
)

// GetSettings returns the user's settings, falling back to defaults when
// none were saved
func (app *Application) GetSettings(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	settings, err := app.Repository.Settings.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.OK(c, model.UserSettings{
				UserID:               claims.UserID,
				DailyApplicationGoal: planner.DefaultDailyGoal,
			})
			return
		}
		app.Logger.Sugar().Errorw("get settings failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, settings)
}

// UpdateSettings saves the daily application goal
func (app *Application) UpdateSettings(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.UpdateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := app.Repository.Settings.Upsert(c.Request.Context(), claims.UserID, req.DailyApplicationGoal); err != nil {
		app.Logger.Sugar().Errorw("settings update failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "could not save settings")
		return
	}

	response.Message(c, "settings updated")
}
