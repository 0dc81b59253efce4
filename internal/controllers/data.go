package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/kdennisod/cash-stuffing/internal/events"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/kdennisod/cash-stuffing/internal/types"
)

// @Summary		Get data
// @Description	Returns the budgets of all periods of the user, keyed by period
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	DataResponse
// @Failure		401	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Router			/get_data [get]
func (co Controller) GetData(c *gin.Context) {
	user := userID(c)

	data, version, ok := co.Cache.Data(c.Request.Context(), user)
	if ok {
		c.JSON(http.StatusOK, DataResponse{Success: true, Data: data})
		return
	}

	data, err := models.UserData(models.DB, user)
	if err != nil {
		respondError(c, err)
		return
	}

	co.Cache.SetData(c.Request.Context(), user, version, data)
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: data})
}

// @Summary		Save data
// @Description	Replaces the budgets of all periods of the user. Nothing is changed if any budget is invalid.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	httputil.Response
// @Failure		400		{object}	httputil.Response
// @Failure		401		{object}	httputil.Response
// @Failure		500		{object}	httputil.Response
// @Param			data	body		DataRequest	true	"Data"
// @Router			/save_data [post]
func (co Controller) SaveData(c *gin.Context) {
	var request DataRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	if request.Data == nil {
		respondError(c, errMissingData)
		return
	}

	user := userID(c)
	if err := models.ReplaceUserData(models.DB, user, request.Data); err != nil {
		respondError(c, err)
		return
	}

	co.changed(c, events.New(events.DataReplaced, user))
	c.JSON(http.StatusOK, httputil.Response{Success: true})
}

// @Summary		Set total
// @Description	Sets the total amount of a period. The total must not be lower than the allocated amount.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	PeriodResponse
// @Failure		400		{object}	httputil.Response
// @Failure		401		{object}	httputil.Response
// @Failure		500		{object}	httputil.Response
// @Param			total	body		SetTotalRequest	true	"Total"
// @Router			/set_total [post]
func (co Controller) SetTotal(c *gin.Context) {
	var request SetTotalRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	if !request.Period.Valid() {
		respondError(c, types.ErrInvalidPeriod)
		return
	}

	user := userID(c)
	p, err := models.SetTotal(models.DB, user, request.Period, request.TotalAmount)
	if err != nil {
		respondError(c, err)
		return
	}

	b, err := models.LoadBudget(models.DB, p.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	co.changed(c, events.New(events.TotalSet, user).
		WithPeriod(request.Period.String()).
		WithAmount(b.TotalAmount))

	c.JSON(http.StatusOK, PeriodResponse{Success: true, Key: request.Period, Period: b})
}

// @Summary		Get period
// @Description	Returns the budget of a single period. Periods without data are returned empty.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	PeriodResponse
// @Failure		400		{object}	httputil.Response
// @Failure		401		{object}	httputil.Response
// @Failure		500		{object}	httputil.Response
// @Param			period	path		string	true	"Period key, e.g. 2024-0 for January 2024"
// @Router			/periods/{period} [get]
func (co Controller) GetPeriod(c *gin.Context) {
	key, err := types.ParsePeriod(c.Param("period"))
	if err != nil {
		respondError(c, err)
		return
	}

	b := budget.EmptyPeriod()
	p, err := models.FindPeriod(models.DB, userID(c), key)
	if err == nil {
		b = p.Domain()
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PeriodResponse{Success: true, Key: key, Period: b})
}
