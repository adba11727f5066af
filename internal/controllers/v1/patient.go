package v1

import (
	"net/http"
	"strings"

	"github.com/AngelVm20/consultorio-sonrisas/internal/httputil"
	"github.com/AngelVm20/consultorio-sonrisas/internal/media"
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterPatientRoutes registers the routes for patients with
// the RouterGroup that is passed.
func RegisterPatientRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPatients)
		r.GET("", GetPatients)
		r.POST("", CreatePatient)
	}

	// Patient with ID
	{
		r.OPTIONS("/:id", OptionsPatientDetail)
		r.GET("/:id", GetPatient)
		r.PATCH("/:id", UpdatePatient)
		r.DELETE("/:id", DeletePatient)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Patients
// @Success		204
// @Router			/v1/patients [options]
func OptionsPatients(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Patients
// @Success		204
// @Router			/v1/patients/{id} [options]
func OptionsPatientDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List patients
// @Description	Returns the patient directory, ordered by last and then first name. The q parameter searches names and the document number, * works as a wildcard.
// @Tags			Patients
// @Produce		json
// @Success		200	{object}	PatientListResponse
// @Failure		500	{object}	PatientListResponse
// @Param			q	query	string	false	"Search names and document number"
// @Router			/v1/patients [get]
func GetPatients(c *gin.Context) {
	var filter PatientQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PatientListResponse{
			Error: &s,
		})
		return
	}

	var patients []models.Patient
	err := models.DB.Order("last_name ASC, first_name ASC").Find(&patients).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatientListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Patient, 0, len(patients))
	for _, patient := range patients {
		if filter.Search != "" && !matchesPatient(filter.Search, patient) {
			continue
		}

		data = append(data, newPatient(patient))
	}

	c.JSON(http.StatusOK, PatientListResponse{Data: data})
}

// matchesPatient reports whether a search term matches the patient's names
// or document number. The term is matched as a glob anywhere in the fields,
// so users can both type a fragment and use * wildcards.
func matchesPatient(search string, patient models.Patient) bool {
	pattern := "*" + strings.ToLower(search) + "*"

	for _, field := range []string{patient.FirstName, patient.LastName, patient.Document} {
		if glob.Glob(pattern, strings.ToLower(field)) {
			return true
		}
	}

	return false
}

// @Summary		Get patient
// @Description	Returns a specific patient
// @Tags			Patients
// @Produce		json
// @Success		200	{object}	PatientResponse
// @Failure		400	{object}	PatientResponse
// @Failure		404	{object}	PatientResponse
// @Failure		500	{object}	PatientResponse
// @Param			id	path	uint64	true	"ID of the patient"
// @Router			/v1/patients/{id} [get]
func GetPatient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PatientResponse{
			Error: &s,
		})
		return
	}

	var patient models.Patient
	err = models.DB.First(&patient, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatientResponse{
			Error: &s,
		})
		return
	}

	data := newPatient(patient)
	c.JSON(http.StatusOK, PatientResponse{Data: &data})
}

// @Summary		Create patient
// @Description	Creates a new patient
// @Tags			Patients
// @Accept			json
// @Produce		json
// @Success		201	{object}	PatientResponse
// @Failure		400	{object}	PatientResponse
// @Failure		500	{object}	PatientResponse
// @Param			patient	body	PatientEditable	true	"Patient"
// @Router			/v1/patients [post]
func CreatePatient(c *gin.Context) {
	var editable PatientEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PatientResponse{
			Error: &s,
		})
		return
	}

	patient := editable.model()
	err := models.DB.Create(&patient).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatientResponse{
			Error: &s,
		})
		return
	}

	data := newPatient(patient)
	c.JSON(http.StatusCreated, PatientResponse{Data: &data})
}

// @Summary		Update patient
// @Description	Updates an existing patient. Only values to be updated need to be specified.
// @Tags			Patients
// @Accept			json
// @Produce		json
// @Success		200	{object}	PatientResponse
// @Failure		400	{object}	PatientResponse
// @Failure		404	{object}	PatientResponse
// @Failure		500	{object}	PatientResponse
// @Param			id		path	uint64			true	"ID of the patient"
// @Param			patient	body	PatientEditable	true	"Patient"
// @Router			/v1/patients/{id} [patch]
func UpdatePatient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PatientResponse{
			Error: &s,
		})
		return
	}

	var patient models.Patient
	err = models.DB.First(&patient, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatientResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PatientEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PatientResponse{
			Error: &s,
		})
		return
	}

	var data PatientEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PatientResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&patient).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatientResponse{
			Error: &s,
		})
		return
	}

	response := newPatient(patient)
	c.JSON(http.StatusOK, PatientResponse{Data: &response})
}

// @Summary		Delete patient
// @Description	Deletes a patient together with their consultations, photos and the ledger entries derived from those consultations
// @Tags			Patients
// @Success		204
// @Failure		400	{object}	PatientResponse
// @Failure		404	{object}	PatientResponse
// @Failure		500	{object}	PatientResponse
// @Param			id	path	uint64	true	"ID of the patient"
// @Router			/v1/patients/{id} [delete]
func DeletePatient(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PatientResponse{
			Error: &s,
		})
		return
	}

	var patient models.Patient
	err = models.DB.First(&patient, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatientResponse{
			Error: &s,
		})
		return
	}

	// Collect the photo files before their records disappear with the
	// patient's consultations
	paths, err := models.PhotoPathsForPatient(models.DB, uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatientResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Delete(&patient).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatientResponse{
			Error: &s,
		})
		return
	}

	media.Remove(paths...)

	c.Status(http.StatusNoContent)
}
