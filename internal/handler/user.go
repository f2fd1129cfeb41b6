package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shaunfitzgarald/job-tracker/internal/auth"
	"github.com/shaunfitzgarald/job-tracker/internal/repository"
	"github.com/shaunfitzgarald/job-tracker/pkg"
	"github.com/shaunfitzgarald/job-tracker/pkg/model"
	"github.com/shaunfitzgarald/job-tracker/pkg/response"
)

// SignUp creates a new user and returns a token
func (app *Application) SignUp(c *gin.Context) {
	var req model.SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		app.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, pkg.ErrPasswordTooLong) {
			response.BadRequest(c, err.Error())
			return
		}
		app.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	userID, err := app.Repository.User.Create(ctx, req.Email, pwHash, req.DisplayName)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Conflict(c, "an account with that email already exists")
			return
		}
		app.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		response.InternalError(c, "could not create user")
		return
	}

	token, expiresAt, err := auth.GenerateToken(app.JwtSecret, userID, req.Email, app.JwtTTL)
	if err != nil {
		app.Logger.Sugar().Errorw("token generation failed", "err", err)
		response.InternalError(c, "")
		return
	}

	response.Created(c, model.TokenRes{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		User: model.UserRes{
			ID:          userID,
			Email:       req.Email,
			DisplayName: req.DisplayName,
		},
	})
}

// Login verifies credentials and returns a token
func (app *Application) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := app.Repository.User.GetByEmail(ctx, req.Email)
	if err != nil {
		// same answer for unknown email and bad password
		response.Unauthorized(c, "invalid email or password")
		return
	}

	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, expiresAt, err := auth.GenerateToken(app.JwtSecret, user.ID, user.Email, app.JwtTTL)
	if err != nil {
		app.Logger.Sugar().Errorw("token generation failed", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, model.TokenRes{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		User:        user.Public(),
	})
}

// Me returns the authenticated user's profile
func (app *Application) Me(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	user, err := app.Repository.User.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	response.OK(c, user)
}

// UpdateProfile updates display name, photo, and the share-stats opt-in
func (app *Application) UpdateProfile(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if req.ShareStats != nil {
		updates["share_stats"] = *req.ShareStats
	}
	if len(updates) == 0 {
		response.BadRequest(c, "no fields to update")
		return
	}

	if err := app.Repository.User.UpdateProfile(c.Request.Context(), claims.UserID, updates); err != nil {
		app.Logger.Sugar().Errorw("profile update failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "could not update profile")
		return
	}

	response.Message(c, "profile updated")
}

// AddResume records metadata for an externally hosted resume file
func (app *Application) AddResume(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.AddResumeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resume := model.Resume{
		ID:             uuid.New().String(),
		Title:          req.Title,
		FileName:       req.FileName,
		StoredFileName: req.StoredFileName,
		URL:            req.URL,
		UploadedAt:     time.Now(),
	}

	if err := app.Repository.User.AddResume(c.Request.Context(), claims.UserID, resume); err != nil {
		app.Logger.Sugar().Errorw("add resume failed", "user", claims.UserID, "err", err)
		response.InternalError(c, "could not save resume")
		return
	}

	response.Created(c, resume)
}

// ListSharingUsers lists users who opted into the community directory
func (app *Application) ListSharingUsers(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	users, err := app.Repository.User.ListSharingStats(c.Request.Context())
	if err != nil {
		app.Logger.Sugar().Errorw("list sharing users failed", "err", err)
		response.InternalError(c, "")
		return
	}

	out := make([]model.UserRes, 0, len(users))
	for _, u := range users {
		if u.ID == claims.UserID {
			continue
		}
		out = append(out, u.Public())
	}

	response.OK(c, out)
}

// GetUserProfile returns another user's profile and resume list. Profiles are
// only visible to their owner or when the user shares their stats.
func (app *Application) GetUserProfile(c *gin.Context) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	userID := c.Param("id")
	user, err := app.Repository.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.NotFound(c, "user not found")
		return
	}

	if user.ID != claims.UserID && !user.ShareStats {
		response.Forbidden(c, "this user does not share their profile")
		return
	}

	response.OK(c, gin.H{
		"user":    user.Public(),
		"resumes": user.Resumes,
	})
}
