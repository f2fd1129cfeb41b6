package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shaunfitzgarald/job-tracker/internal/access"
	"github.com/shaunfitzgarald/job-tracker/internal/repository"
	"github.com/shaunfitzgarald/job-tracker/internal/stats"
	"github.com/shaunfitzgarald/job-tracker/pkg/model"
	"github.com/shaunfitzgarald/job-tracker/pkg/response"
)

const recentApplicationsLimit = 5

// CreateApplication records a new job application for the current user
func (app *Application) CreateApplication(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.CreateApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status := req.ApplicationStatus
	if status == "" {
		status = model.StatusApplied
	}

	record := &model.Application{
		UserID:            claims.UserID,
		CompanyName:       req.CompanyName,
		JobTitle:          req.JobTitle,
		JobLocation:       req.JobLocation,
		JobType:           req.JobType,
		JobPostingURL:     req.JobPostingURL,
		Hiring:            req.Hiring,
		ApplicationStatus: status,
		ApplicationDate:   req.ApplicationDate,
		InterviewDateTime: req.InterviewDateTime,
		InterviewType:     req.InterviewType,
		FollowUpDate:      req.FollowUpDate,
		DateHeardBack:     req.DateHeardBack,
		Outcome:           req.Outcome,
		Salary:            req.Salary,
		SalaryRange:       req.SalaryRange,
		ContactPerson:     req.ContactPerson,
		ContactEmail:      req.ContactEmail,
		Notes:             req.Notes,
		IsPublic:          req.IsPublic,
	}

	id, err := app.Repository.Application.Create(c.Request.Context(), record)
	if err != nil {
		app.Logger.Sugar().Errorw("application create failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "could not save application")
		return
	}

	app.invalidateCommunityCache(c)
	response.Created(c, gin.H{"id": id})
}

// ListApplications returns the current user's applications, newest first
func (app *Application) ListApplications(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	apps, err := app.Repository.Application.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("list applications failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, apps)
}

// ListSharedWithMe returns applications other users shared with the viewer
func (app *Application) ListSharedWithMe(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	apps, err := app.Repository.Application.ListSharedWith(c.Request.Context(), claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("list shared applications failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, apps)
}

// GetApplication returns one application, enforcing the visibility gate.
// A record that exists but is hidden from the viewer answers 403, distinct
// from 404.
func (app *Application) GetApplication(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	record, err := app.Repository.Application.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		app.Logger.Sugar().Errorw("get application failed", "id", c.Param("id"), "err", err)
		response.InternalError(c, "")
		return
	}

	if !access.CanView(record, claims.UserID) {
		response.Forbidden(c, "not authorized to view this application")
		return
	}

	response.OK(c, record)
}

// PatchApplication updates fields on an application. The owner and users the
// record was shared with may edit.
func (app *Application) PatchApplication(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.PatchApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	record, err := app.Repository.Application.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		response.InternalError(c, "")
		return
	}

	if !access.CanEdit(record, claims.UserID) {
		response.Forbidden(c, "not authorized to edit this application")
		return
	}

	updates := patchUpdates(req)
	if len(updates) == 0 {
		response.BadRequest(c, "no fields to update")
		return
	}

	if err := app.Repository.Application.Update(ctx, record.ID, updates); err != nil {
		app.Logger.Sugar().Errorw("application update failed", "id", record.ID, "err", err)
		response.InternalError(c, "could not update application")
		return
	}

	app.invalidateCommunityCache(c)
	response.Message(c, "application updated")
}

// DeleteApplication removes an application; owner only
func (app *Application) DeleteApplication(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	ctx := c.Request.Context()
	record, err := app.Repository.Application.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		response.InternalError(c, "")
		return
	}

	if record.UserID != claims.UserID {
		response.Forbidden(c, "only the owner can delete an application")
		return
	}

	if err := app.Repository.Application.Delete(ctx, record.ID); err != nil {
		app.Logger.Sugar().Errorw("application delete failed", "id", record.ID, "err", err)
		response.InternalError(c, "could not delete application")
		return
	}

	app.invalidateCommunityCache(c)
	response.NoContent(c)
}

// ShareApplication grants another user view/edit access by email; owner only
func (app *Application) ShareApplication(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.ShareApplicationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	record, err := app.Repository.Application.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		response.InternalError(c, "")
		return
	}

	if record.UserID != claims.UserID {
		response.Forbidden(c, "only the owner can share an application")
		return
	}

	target, err := app.Repository.User.GetByEmail(ctx, req.Email)
	if err != nil {
		response.NotFound(c, "no user with that email")
		return
	}
	if target.ID == claims.UserID {
		response.BadRequest(c, "cannot share an application with yourself")
		return
	}

	for _, u := range record.SharedWith {
		if u.ID == target.ID {
			response.Message(c, "already shared with this user")
			return
		}
	}

	shared := append(record.SharedWith, model.SharedUser{
		ID:          target.ID,
		Email:       target.Email,
		DisplayName: target.DisplayName,
	})
	if err := app.Repository.Application.SetSharedWith(ctx, record.ID, shared); err != nil {
		app.Logger.Sugar().Errorw("share update failed", "id", record.ID, "err", err)
		response.InternalError(c, "could not share application")
		return
	}

	response.OK(c, gin.H{"shared_with": shared})
}

// UnshareApplication revokes a user's access; owner only
func (app *Application) UnshareApplication(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	ctx := c.Request.Context()
	record, err := app.Repository.Application.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "application not found")
			return
		}
		response.InternalError(c, "")
		return
	}

	if record.UserID != claims.UserID {
		response.Forbidden(c, "only the owner can manage sharing")
		return
	}

	targetID := c.Param("user_id")
	shared := make([]model.SharedUser, 0, len(record.SharedWith))
	for _, u := range record.SharedWith {
		if u.ID != targetID {
			shared = append(shared, u)
		}
	}

	if err := app.Repository.Application.SetSharedWith(ctx, record.ID, shared); err != nil {
		app.Logger.Sugar().Errorw("unshare update failed", "id", record.ID, "err", err)
		response.InternalError(c, "could not update sharing")
		return
	}

	response.OK(c, gin.H{"shared_with": shared})
}

// DashboardStats returns the status breakdown and the most recent
// applications for the current user
func (app *Application) DashboardStats(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	apps, err := app.Repository.Application.ListByUser(c.Request.Context(), claims.UserID)
	if err != nil {
		app.Logger.Sugar().Errorw("dashboard stats failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{
		"counts": stats.Classify(apps),
		"recent": stats.RecentApplications(apps, recentApplicationsLimit),
	})
}

func patchUpdates(req model.PatchApplicationReq) map[string]interface{} {
	updates := map[string]interface{}{}
	set := func(col string, v interface{}, present bool) {
		if present {
			updates[col] = v
		}
	}
	set("company_name", req.CompanyName, req.CompanyName != nil)
	set("job_title", req.JobTitle, req.JobTitle != nil)
	set("job_location", req.JobLocation, req.JobLocation != nil)
	set("job_type", req.JobType, req.JobType != nil)
	set("job_posting_url", req.JobPostingURL, req.JobPostingURL != nil)
	set("hiring", req.Hiring, req.Hiring != nil)
	set("application_status", req.ApplicationStatus, req.ApplicationStatus != nil)
	set("application_date", req.ApplicationDate, req.ApplicationDate != nil)
	set("interview_date_time", req.InterviewDateTime, req.InterviewDateTime != nil)
	set("interview_type", req.InterviewType, req.InterviewType != nil)
	set("follow_up_date", req.FollowUpDate, req.FollowUpDate != nil)
	set("date_heard_back", req.DateHeardBack, req.DateHeardBack != nil)
	set("outcome", req.Outcome, req.Outcome != nil)
	set("salary", req.Salary, req.Salary != nil)
	set("salary_range", req.SalaryRange, req.SalaryRange != nil)
	set("contact_person", req.ContactPerson, req.ContactPerson != nil)
	set("contact_email", req.ContactEmail, req.ContactEmail != nil)
	set("notes", req.Notes, req.Notes != nil)
	set("is_public", req.IsPublic, req.IsPublic != nil)
	return updates
}
