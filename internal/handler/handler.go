package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaunfitzgarald/job-tracker/internal/auth"
	"github.com/shaunfitzgarald/job-tracker/internal/cache"
	"github.com/shaunfitzgarald/job-tracker/internal/planner"
	"github.com/shaunfitzgarald/job-tracker/internal/repository"
)

type Application struct {
	Logger     *zap.Logger
	Repository *repository.Repository
	Cache      *cache.Cache
	JwtSecret  string
	JwtTTL     time.Duration
}

// GetClaimsFromContext retrieves the verified token claims set by the auth
// middleware.
func (app *Application) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// dailyGoal reads the user's saved goal, falling back to the default when no
// settings record exists.
func (app *Application) dailyGoal(ctx context.Context, userID string) int {
	settings, err := app.Repository.Settings.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			app.Logger.Sugar().Warnw("settings lookup failed, using default goal", "user", userID, "err", err)
		}
		return planner.DefaultDailyGoal
	}
	return settings.DailyApplicationGoal
}
