package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kdennisod/cash-stuffing/internal/events"
	"github.com/kdennisod/cash-stuffing/internal/httputil"
	"github.com/kdennisod/cash-stuffing/internal/models"
	"github.com/kdennisod/cash-stuffing/internal/types"
)

// @Summary		Add category
// @Description	Creates a category in a period. The allocation must fit into the remaining total of the period.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httputil.Response
// @Failure		401			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			category	body		AddCategoryRequest	true	"Category"
// @Router			/add_category [post]
func (co Controller) AddCategory(c *gin.Context) {
	var request AddCategoryRequest
	if err := httputil.BindData(c, &request); err != nil {
		return
	}

	if !request.Period.Valid() {
		respondError(c, types.ErrInvalidPeriod)
		return
	}

	user := userID(c)
	category, err := models.AddCategory(models.DB, user, request.Period, request.Name, request.AllocatedAmount, request.Icon)
	if err != nil {
		respondError(c, err)
		return
	}

	co.changed(c, events.New(events.CategoryAdded, user).
		WithPeriod(request.Period.String()).
		WithCategory(category.ID).
		WithAmount(category.Allocated))

	c.JSON(http.StatusCreated, CategoryResponse{Success: true, Category: category.Domain()})
}

// @Summary		Delete category
// @Description	Deletes a category with all of its expenses
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	httputil.Response
// @Failure		400			{object}	httputil.Response
// @Failure		401			{object}	httputil.Response
// @Failure		404			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			category_id	path		string	true	"ID of the category"
// @Router			/delete_category/{category_id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	id, err := httputil.ParseUUID(c, "category_id")
	if err != nil {
		return
	}

	user := userID(c)
	category, p, err := models.DeleteCategory(models.DB, user, id)
	if err != nil {
		respondError(c, err)
		return
	}

	co.changed(c, events.New(events.CategoryDeleted, user).
		WithPeriod(p.Key().String()).
		WithCategory(category.ID))

	c.JSON(http.StatusOK, httputil.Response{Success: true})
}
