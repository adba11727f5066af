package v1

import (
	"net/http"

	"github.com/AngelVm20/consultorio-sonrisas/internal/httputil"
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterMovementRoutes registers the routes for cash movements with
// the RouterGroup that is passed.
func RegisterMovementRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMovements)
		r.GET("", GetMovements)
		r.POST("", CreateMovement)
	}

	// Weekly rollup
	{
		r.OPTIONS("/weeks", OptionsWeeklySummaries)
		r.GET("/weeks", GetWeeklySummaries)
	}

	// Report downloads
	{
		r.OPTIONS("/export", OptionsMovementExport)
		r.GET("/export", GetMovementExport)
	}

	// Movement with ID
	{
		r.OPTIONS("/:id", OptionsMovementDetail)
		r.DELETE("/:id", DeleteMovement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Movements
// @Success		204
// @Router			/v1/movements [options]
func OptionsMovements(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Movements
// @Success		204
// @Router			/v1/movements/{id} [options]
func OptionsMovementDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		List cash movements
// @Description	Returns the cash movements of a date range with their totals. Defaults to the current week, Monday through Sunday.
// @Tags			Movements
// @Produce		json
// @Success		200	{object}	MovementListResponse
// @Failure		400	{object}	MovementListResponse
// @Failure		500	{object}	MovementListResponse
// @Param			fromDate	query	string	false	"First day of the range, inclusive. Format: YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Last day of the range, inclusive. Format: YYYY-MM-DD"
// @Router			/v1/movements [get]
func GetMovements(c *gin.Context) {
	var filter DateRangeQuery
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MovementListResponse{
			Error: &s,
		})
		return
	}

	from, until, err := filter.dates()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MovementListResponse{
			Error: &s,
		})
		return
	}

	movements, err := models.CashMovementsInRange(models.DB, from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MovementListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Movement, 0, len(movements))
	for _, movement := range movements {
		data = append(data, newMovement(movement))
	}

	totals := newTotals(movements)
	c.JSON(http.StatusOK, MovementListResponse{
		Data:   data,
		Totals: &totals,
	})
}

// @Summary		Create cash movement
// @Description	Creates a manually entered cash movement
// @Tags			Movements
// @Accept			json
// @Produce		json
// @Success		201	{object}	MovementResponse
// @Failure		400	{object}	MovementResponse
// @Failure		500	{object}	MovementResponse
// @Param			movement	body	MovementEditable	true	"Movement"
// @Router			/v1/movements [post]
func CreateMovement(c *gin.Context) {
	var editable MovementEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MovementResponse{
			Error: &s,
		})
		return
	}

	// The store accepts zero amounts for derived entries, manual ones
	// must be strictly positive
	if !editable.Amount.IsPositive() {
		s := errAmountNotPositive.Error()
		c.JSON(http.StatusBadRequest, MovementResponse{
			Error: &s,
		})
		return
	}

	if !slices.Contains([]models.MovementKind{models.Income, models.Expense}, editable.Kind) {
		s := errMovementKindInvalid.Error()
		c.JSON(http.StatusBadRequest, MovementResponse{
			Error: &s,
		})
		return
	}

	movement := editable.model()
	err := models.DB.Create(&movement).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MovementResponse{
			Error: &s,
		})
		return
	}

	data := newMovement(movement)
	c.JSON(http.StatusCreated, MovementResponse{Data: &data})
}

// @Summary		Delete cash movement
// @Description	Deletes a cash movement. Deleting a movement that does not exist is not an error. Movements derived from a consultation require force=true as they desynchronize from their consultation until its next save.
// @Tags			Movements
// @Produce		json
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		409	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id		path	uint64	true	"ID of the movement"
// @Param			force	query	bool	false	"Confirm deleting a consultation-derived movement"
// @Router			/v1/movements/{id} [delete]
func DeleteMovement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MovementResponse{
			Error: &s,
		})
		return
	}

	var movement models.CashMovement
	err = models.DB.First(&movement, uri.ID).Error
	if err != nil {
		// Delete is idempotent, a missing movement is already deleted
		if status(err) == http.StatusNotFound {
			c.Status(http.StatusNoContent)
			return
		}

		s := err.Error()
		c.JSON(status(err), MovementResponse{
			Error: &s,
		})
		return
	}

	if movement.Source == models.SourceConsultation && c.Query("force") != "true" {
		s := errDeleteNeedsForce.Error()
		c.JSON(http.StatusConflict, MovementResponse{
			Error: &s,
		})
		return
	}

	err = models.DeleteCashMovement(models.DB, uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MovementResponse{
			Error: &s,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Movements
// @Success		204
// @Router			/v1/movements/weeks [options]
func OptionsWeeklySummaries(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Weekly summaries
// @Description	Returns the week-by-week rollup of the cash movements of a date range. Weeks are Monday-anchored buckets, days before a year's first Monday fall into week 00.
// @Tags			Movements
// @Produce		json
// @Success		200	{object}	WeeklySummaryListResponse
// @Failure		400	{object}	WeeklySummaryListResponse
// @Failure		500	{object}	WeeklySummaryListResponse
// @Param			fromDate	query	string	false	"First day of the range, inclusive. Format: YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Last day of the range, inclusive. Format: YYYY-MM-DD"
// @Router			/v1/movements/weeks [get]
func GetWeeklySummaries(c *gin.Context) {
	var filter DateRangeQuery
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WeeklySummaryListResponse{
			Error: &s,
		})
		return
	}

	from, until, err := filter.dates()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, WeeklySummaryListResponse{
			Error: &s,
		})
		return
	}

	summaries, err := models.WeeklySummaries(models.DB, from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WeeklySummaryListResponse{
			Error: &s,
		})
		return
	}

	data := make([]WeeklySummary, 0, len(summaries))
	for _, summary := range summaries {
		data = append(data, newWeeklySummary(summary))
	}

	c.JSON(http.StatusOK, WeeklySummaryListResponse{Data: data})
}
