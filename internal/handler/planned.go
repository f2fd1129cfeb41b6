package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shaunfitzgarald/job-tracker/internal/planner"
	"github.com/shaunfitzgarald/job-tracker/internal/repository"
	"github.com/shaunfitzgarald/job-tracker/pkg/model"
	"github.com/shaunfitzgarald/job-tracker/pkg/response"
)

// CreatePlanned adds a planned application for the current user
func (app *Application) CreatePlanned(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.CreatePlannedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	record := &model.PlannedApplication{
		UserID:      claims.UserID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		JobURL:      req.JobURL,
		Priority:    priority,
		PlannedDate: req.PlannedDate,
		Notes:       req.Notes,
	}

	id, err := app.Repository.Planned.Create(c.Request.Context(), record)
	if err != nil {
		app.Logger.Sugar().Errorw("planned create failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "could not save planned application")
		return
	}

	response.Created(c, gin.H{"id": id})
}

// ListPlanned returns the user's planned applications, earliest date first
func (app *Application) ListPlanned(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	jobs, err := app.Repository.Planned.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("list planned failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, jobs)
}

// PlannedSchedule groups the user's still-planned applications by planned
// day, with undated records listed separately
func (app *Application) PlannedSchedule(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	jobs, err := app.Repository.Planned.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("planned schedule failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	days, unscheduled := planner.Schedule(jobs)
	response.OK(c, gin.H{
		"days":        days,
		"unscheduled": unscheduled,
	})
}

// ownedPlanned fetches a planned application and checks ownership; planned
// records are never shared or public.
func (app *Application) ownedPlanned(c *gin.Context, userID string) (model.PlannedApplication, bool) {
	record, err := app.Repository.Planned.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "planned application not found")
		} else {
			app.Logger.Sugar().Errorw("get planned failed", "id", c.Param("id"), "err", err)
			response.InternalError(c, "")
		}
		return model.PlannedApplication{}, false
	}
	if record.UserID != userID {
		response.Forbidden(c, "not authorized to access this planned application")
		return model.PlannedApplication{}, false
	}
	return record, true
}

// PatchPlanned updates a planned application's fields
func (app *Application) PatchPlanned(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.PatchPlannedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	record, ok := app.ownedPlanned(c, claims.UserID)
	if !ok {
		return
	}

	updates := map[string]interface{}{}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.JobTitle != nil {
		updates["job_title"] = *req.JobTitle
	}
	if req.JobURL != nil {
		updates["job_url"] = *req.JobURL
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.PlannedDate != nil {
		updates["planned_date"] = *req.PlannedDate
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		response.BadRequest(c, "no fields to update")
		return
	}

	if err := app.Repository.Planned.Update(c.Request.Context(), record.ID, updates); err != nil {
		app.Logger.Sugar().Errorw("planned update failed", "id", record.ID, "err", err)
		response.InternalError(c, "could not update planned application")
		return
	}

	response.Message(c, "planned application updated")
}

// DeletePlanned removes a planned application
func (app *Application) DeletePlanned(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	record, ok := app.ownedPlanned(c, claims.UserID)
	if !ok {
		return
	}

	if err := app.Repository.Planned.Delete(c.Request.Context(), record.ID); err != nil {
		app.Logger.Sugar().Errorw("planned delete failed", "id", record.ID, "err", err)
		response.InternalError(c, "could not delete planned application")
		return
	}

	response.NoContent(c)
}

// MarkPlannedApplied transitions a planned application to applied and stamps
// the applied date
func (app *Application) MarkPlannedApplied(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	record, ok := app.ownedPlanned(c, claims.UserID)
	if !ok {
		return
	}

	if record.Status == model.PlannedStatusApplied {
		response.Message(c, "already marked as applied")
		return
	}

	if err := app.Repository.Planned.MarkApplied(c.Request.Context(), record.ID, time.Now()); err != nil {
		app.Logger.Sugar().Errorw("mark applied failed", "id", record.ID, "err", err)
		response.InternalError(c, "could not update status")
		return
	}

	response.Message(c, "marked as applied")
}

// TodayProgress reports progress against the daily application goal
func (app *Application) TodayProgress(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	ctx := c.Request.Context()
	jobs, err := app.Repository.Planned.ListByUser(ctx, claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("today progress failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	goal := app.dailyGoal(ctx, claims.UserID)
	response.OK(c, planner.TodayProgress(jobs, goal, time.Now()))
}

// ApplicationHistory returns applied planned applications grouped by day,
// newest first, with the per-day average
func (app *Application) ApplicationHistory(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	applied, err := app.Repository.Planned.ListAppliedByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("history failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	history := planner.History(applied)
	response.OK(c, gin.H{
		"days":                         history,
		"average_applications_per_day": planner.AveragePerDay(history),
	})
}

// DistributePlanned reassigns overdue and undated planned applications over
// the coming days, at most one daily goal's worth per day. Each record is
// persisted separately: one failed write is logged and skipped, and the
// response reports how many records were distributed out of those attempted.
func (app *Application) DistributePlanned(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	ctx := c.Request.Context()
	jobs, err := app.Repository.Planned.ListByUser(ctx, claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("distribute fetch failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	goal := app.dailyGoal(ctx, claims.UserID)
	plan, err := planner.Distribute(jobs, goal, time.Now())
	if err != nil {
		if errors.Is(err, planner.ErrInvalidGoal) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "")
		return
	}

	distributed := 0
	for _, a := range plan.Assignments {
		if err := app.Repository.Planned.UpdatePlannedDate(ctx, a.Job.ID, a.PlannedDate); err != nil {
			app.Logger.Sugar().Warnw("distribute write failed, continuing",
				"id", a.Job.ID, "err", err)
			continue
		}
		distributed++
	}

	response.OK(c, gin.H{
		"attempted":   len(plan.Assignments),
		"distributed": distributed,
		"failed":      len(plan.Assignments) - distributed,
		"days_needed": plan.DaysNeeded,
	})
}
