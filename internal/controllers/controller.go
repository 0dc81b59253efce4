// Package controllers implements the HTTP handlers of the budget API.
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/cache"
	"github.com/kdennisod/cash-stuffing/internal/events"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/kdennisod/cash-stuffing/internal/ocr"
	"github.com/rs/zerolog/log"
)

// SessionCookie is the name of the cookie holding the session ID.
const SessionCookie = "session"

// contextUser is the key of the authenticated user's ID in the gin context.
const contextUser = "cash-stuffing/user"

// Controller holds the collaborators of the handlers. The database is
// always models.DB.
type Controller struct {
	Cache   cache.Cache
	Events  events.Publisher
	Scanner *ocr.Scanner

	// SessionTTL is the lifetime of sessions created at login
	SessionTTL time.Duration

	// SecureCookies marks the session cookie as https only
	SecureCookies bool

	// MaxUploadSize is the maximum size of receipt uploads in bytes
	MaxUploadSize int64
}

// New returns a Controller without cache and event publishing.
func New(scanner *ocr.Scanner) Controller {
	return Controller{
		Cache:         cache.Noop{},
		Events:        events.Noop{},
		Scanner:       scanner,
		SessionTTL:    7 * 24 * time.Hour,
		MaxUploadSize: 10 << 20,
	}
}

// RegisterRoutes registers all routes of the API with the RouterGroup.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register", co.Register)
	r.POST("/login", co.Login)
	r.GET("/logout", co.Logout)
	r.GET("/healthz", GetHealthz)

	authenticated := r.Group("", co.RequireSession)
	{
		authenticated.GET("/get_data", co.GetData)
		authenticated.POST("/save_data", co.SaveData)
		authenticated.POST("/set_total", co.SetTotal)
		authenticated.GET("/periods/:period", co.GetPeriod)
		authenticated.POST("/add_category", co.AddCategory)
		authenticated.DELETE("/delete_category/:category_id", co.DeleteCategory)
		authenticated.POST("/add_expense", co.AddExpense)
		authenticated.DELETE("/delete_expense/:category_id/:expense_id", co.DeleteExpense)
		authenticated.GET("/delete_expense/:category_id/:expense_id", co.DeleteExpense)
		authenticated.POST("/ocr", co.OCR)
	}
}

// status maps errors to HTTP status codes.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, budget.ErrCategoryNotFound) || errors.Is(err, budget.ErrExpenseNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrInvalidLogin) || errors.Is(err, models.ErrSessionExpired) || errors.Is(err, errNotLoggedIn) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// respondError writes the error with the matching status. Messages of
// server errors are not sent to the client.
func respondError(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		httputil.ServerError(c, err)
		return
	}

	httputil.NewError(c, s, err)
}

// RequireSession aborts the request with 401 if no valid session cookie is sent.
func (co Controller) RequireSession(c *gin.Context) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		respondError(c, errNotLoggedIn)
		return
	}

	id, err := uuid.Parse(cookie)
	if err != nil {
		respondError(c, errNotLoggedIn)
		return
	}

	session, err := models.ActiveSession(models.DB, id)
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			err = errNotLoggedIn
		}
		respondError(c, err)
		return
	}

	c.Set(contextUser, session.UserID)
	c.Next()
}

// userID returns the ID of the authenticated user.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUser).(uuid.UUID)
}

// changed invalidates the cached data of the user and publishes the event.
// Both are best effort.
func (co Controller) changed(c *gin.Context, e events.Event) {
	ctx := context.WithoutCancel(c.Request.Context())

	co.Cache.Invalidate(ctx, e.UserID)

	if err := co.Events.Publish(ctx, e); err != nil {
		log.Warn().Err(err).Str("request-id", requestid.Get(c)).Str("type", string(e.Type)).Msg("event could not be published")
	}
}
