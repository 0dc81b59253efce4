package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/models"
)

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.Response
// @Router			/healthz [get]
func GetHealthz(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		httputil.ServerError(c, err)
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		httputil.ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
