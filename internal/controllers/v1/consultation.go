package v1

import (
	"net/http"

	"github.com/AngelVm20/consultorio-sonrisas/internal/httputil"
	"github.com/AngelVm20/consultorio-sonrisas/internal/media"
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterConsultationRoutes registers the routes for consultations with
// the RouterGroup that is passed.
func RegisterConsultationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsConsultations)
		r.GET("", GetConsultations)
		r.POST("", CreateConsultation)
	}

	// Consultation with ID
	{
		r.OPTIONS("/:id", OptionsConsultationDetail)
		r.GET("/:id", GetConsultation)
		r.PATCH("/:id", UpdateConsultation)
		r.DELETE("/:id", DeleteConsultation)
	}

	// Photos of a consultation
	{
		r.OPTIONS("/:id/photos", OptionsConsultationPhotos)
		r.GET("/:id/photos", GetConsultationPhotos)
		r.POST("/:id/photos", CreateConsultationPhoto)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Consultations
// @Success		204
// @Router			/v1/consultations [options]
func OptionsConsultations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Consultations
// @Success		204
// @Router			/v1/consultations/{id} [options]
func OptionsConsultationDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List consultations
// @Description	Returns a patient's visit history, newest first
// @Tags			Consultations
// @Produce		json
// @Success		200	{object}	ConsultationListResponse
// @Failure		400	{object}	ConsultationListResponse
// @Failure		500	{object}	ConsultationListResponse
// @Param			patient	query	uint64	true	"ID of the patient"
// @Router			/v1/consultations [get]
func GetConsultations(c *gin.Context) {
	var filter ConsultationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ConsultationListResponse{
			Error: &s,
		})
		return
	}

	if filter.PatientID == 0 {
		s := errPatientParamRequired.Error()
		c.JSON(http.StatusBadRequest, ConsultationListResponse{
			Error: &s,
		})
		return
	}

	var consultations []models.Consultation
	err := models.DB.
		Where("patient_id = ?", filter.PatientID).
		Order("date(consultations.date) DESC, consultations.id DESC").
		Find(&consultations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Consultation, 0, len(consultations))
	for _, consultation := range consultations {
		data = append(data, newConsultation(consultation))
	}

	c.JSON(http.StatusOK, ConsultationListResponse{Data: data})
}

// @Summary		Get consultation
// @Description	Returns a specific consultation
// @Tags			Consultations
// @Produce		json
// @Success		200	{object}	ConsultationResponse
// @Failure		400	{object}	ConsultationResponse
// @Failure		404	{object}	ConsultationResponse
// @Failure		500	{object}	ConsultationResponse
// @Param			id	path	uint64	true	"ID of the consultation"
// @Router			/v1/consultations/{id} [get]
func GetConsultation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ConsultationResponse{
			Error: &s,
		})
		return
	}

	var consultation models.Consultation
	err = models.DB.First(&consultation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	data := newConsultation(consultation)
	c.JSON(http.StatusOK, ConsultationResponse{Data: &data})
}

// @Summary		Create consultation
// @Description	Creates a new consultation. When its income is positive, a matching ledger entry is created in the same transaction.
// @Tags			Consultations
// @Accept			json
// @Produce		json
// @Success		201	{object}	ConsultationResponse
// @Failure		400	{object}	ConsultationResponse
// @Failure		404	{object}	ConsultationResponse
// @Failure		500	{object}	ConsultationResponse
// @Param			consultation	body	ConsultationEditable	true	"Consultation"
// @Router			/v1/consultations [post]
func CreateConsultation(c *gin.Context) {
	var editable ConsultationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ConsultationResponse{
			Error: &s,
		})
		return
	}

	// The visit must belong to an existing patient
	var patient models.Patient
	err := models.DB.First(&patient, editable.PatientID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	consultation := editable.model()
	err = models.DB.Create(&consultation).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	data := newConsultation(consultation)
	c.JSON(http.StatusCreated, ConsultationResponse{Data: &data})
}

// @Summary		Update consultation
// @Description	Updates an existing consultation. Only values to be updated need to be specified. The consultation's derived ledger entry is recreated to match in the same transaction.
// @Tags			Consultations
// @Accept			json
// @Produce		json
// @Success		200	{object}	ConsultationResponse
// @Failure		400	{object}	ConsultationResponse
// @Failure		404	{object}	ConsultationResponse
// @Failure		500	{object}	ConsultationResponse
// @Param			id				path	uint64					true	"ID of the consultation"
// @Param			consultation	body	ConsultationEditable	true	"Consultation"
// @Router			/v1/consultations/{id} [patch]
func UpdateConsultation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ConsultationResponse{
			Error: &s,
		})
		return
	}

	var consultation models.Consultation
	err = models.DB.First(&consultation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ConsultationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ConsultationResponse{
			Error: &s,
		})
		return
	}

	var data ConsultationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ConsultationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&consultation).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	// Re-read the row, partial updates leave the struct incomplete
	err = models.DB.First(&consultation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	response := newConsultation(consultation)
	c.JSON(http.StatusOK, ConsultationResponse{Data: &response})
}

// @Summary		Delete consultation
// @Description	Deletes a consultation together with its photos and derived ledger entries
// @Tags			Consultations
// @Success		204
// @Failure		400	{object}	ConsultationResponse
// @Failure		404	{object}	ConsultationResponse
// @Failure		500	{object}	ConsultationResponse
// @Param			id	path	uint64	true	"ID of the consultation"
// @Router			/v1/consultations/{id} [delete]
func DeleteConsultation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ConsultationResponse{
			Error: &s,
		})
		return
	}

	var consultation models.Consultation
	err = models.DB.First(&consultation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	// Collect the photo files before their records disappear with the
	// consultation
	photos, err := models.PhotosForConsultation(models.DB, uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Delete(&consultation).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ConsultationResponse{
			Error: &s,
		})
		return
	}

	// Best effort, the records are gone already
	for _, photo := range photos {
		media.Remove(photo.FilePath)
	}

	c.Status(http.StatusNoContent)
}
