package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/rs/zerolog/log"
)

// @Summary		Register
// @Description	Creates a new user
// @Tags			Users
// @Accept			json,x-www-form-urlencoded
// @Produce		json
// @Success		201			{object}	UserResponse
// @Failure		400			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/register [post]
func (co Controller) Register(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		return
	}

	user := models.User{Username: credentials.Username}
	if err := user.SetPassword(credentials.Password); err != nil {
		respondError(c, err)
		return
	}

	if err := models.DB.Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}

	log.Info().Str("user", user.ID.String()).Msg("user registered")
	c.JSON(http.StatusCreated, UserResponse{Success: true, User: user})
}

// @Summary		Log in
// @Description	Verifies the credentials and sets the session cookie
// @Tags			Users
// @Accept			json,x-www-form-urlencoded
// @Produce		json
// @Success		200			{object}	UserResponse
// @Failure		400			{object}	httputil.Response
// @Failure		401			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/login [post]
func (co Controller) Login(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		return
	}

	user, err := models.Authenticate(models.DB, credentials.Username, credentials.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	session, err := models.NewSession(models.DB, user.ID, co.SessionTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	co.setCookie(c, session.ID.String(), int(co.SessionTTL.Seconds()))
	c.JSON(http.StatusOK, UserResponse{Success: true, User: user})
}

// @Summary		Log out
// @Description	Deletes the session and redirects to the login
// @Tags			Users
// @Success		302
// @Router			/logout [get]
func (co Controller) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(cookie); err == nil {
			if err := models.DB.Delete(&models.Session{}, "id = ?", id).Error; err != nil {
				log.Warn().Err(err).Msg("session could not be deleted")
			}
		}
	}

	co.setCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/login")
}

func (co Controller) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, value, maxAge, "/", "", co.SecureCookies, true)
}
