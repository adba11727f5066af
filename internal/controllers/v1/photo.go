package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/AngelVm20/consultorio-sonrisas/internal/httputil"
	"github.com/AngelVm20/consultorio-sonrisas/internal/media"
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/gin-gonic/gin"
)

// photoSuffixes are the file types accepted for consultation photos.
var photoSuffixes = []string{".jpg", ".jpeg", ".png", ".webp"}

// RegisterPhotoRoutes registers the routes for photos with
// the RouterGroup that is passed.
func RegisterPhotoRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:id", OptionsPhotoDetail)
		r.GET("/:id", GetPhoto)
		r.DELETE("/:id", DeletePhoto)
	}
}

// getUploadedPhoto returns the form file and its suffix and handles potential errors.
func getUploadedPhoto(c *gin.Context) (multipart.File, string, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, "", errNoFilePost
	}

	if err != nil {
		return nil, "", err
	}

	name := strings.ToLower(formFile.Filename)
	var suffix string
	for _, s := range photoSuffixes {
		if strings.HasSuffix(name, s) {
			suffix = s
			break
		}
	}

	if suffix == "" {
		return nil, "", fmt.Errorf("%w: %s", errWrongFileSuffix, strings.Join(photoSuffixes, ", "))
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, "", err
	}

	return f, suffix, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Photos
// @Success		204
// @Router			/v1/consultations/{id}/photos [options]
func OptionsConsultationPhotos(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Photos
// @Success		204
// @Router			/v1/photos/{id} [options]
func OptionsPhotoDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		List photos
// @Description	Returns the photos attached to a consultation, ordered by position
// @Tags			Photos
// @Produce		json
// @Success		200	{object}	PhotoListResponse
// @Failure		400	{object}	PhotoListResponse
// @Failure		404	{object}	PhotoListResponse
// @Failure		500	{object}	PhotoListResponse
// @Param			id	path	uint64	true	"ID of the consultation"
// @Router			/v1/consultations/{id}/photos [get]
func GetConsultationPhotos(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PhotoListResponse{
			Error: &s,
		})
		return
	}

	var consultation models.Consultation
	err = models.DB.First(&consultation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PhotoListResponse{
			Error: &s,
		})
		return
	}

	photos, err := models.PhotosForConsultation(models.DB, uri.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PhotoListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Photo, 0, len(photos))
	for _, photo := range photos {
		data = append(data, newPhoto(photo))
	}

	c.JSON(http.StatusOK, PhotoListResponse{Data: data})
}

// @Summary		Upload photo
// @Description	Attaches a photo to a consultation. Send the image as form field "file", an optional description as form field "description".
// @Tags			Photos
// @Accept			multipart/form-data
// @Produce		json
// @Success		201	{object}	PhotoResponse
// @Failure		400	{object}	PhotoResponse
// @Failure		404	{object}	PhotoResponse
// @Failure		500	{object}	PhotoResponse
// @Param			id		path		uint64	true	"ID of the consultation"
// @Param			file	formData	file	true	"Image file"
// @Router			/v1/consultations/{id}/photos [post]
func CreateConsultationPhoto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PhotoResponse{
			Error: &s,
		})
		return
	}

	var consultation models.Consultation
	err = models.DB.First(&consultation, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PhotoResponse{
			Error: &s,
		})
		return
	}

	file, suffix, err := getUploadedPhoto(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PhotoResponse{
			Error: &s,
		})
		return
	}
	defer file.Close()

	path, err := media.SavePhoto(consultation.PatientID, consultation.Date, suffix, file)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, PhotoResponse{
			Error: &s,
		})
		return
	}

	photo := models.ConsultationPhoto{
		ConsultationID: uri.ID,
		FilePath:       path,
		Description:    c.PostForm("description"),
	}

	err = models.DB.Create(&photo).Error
	if err != nil {
		// The file is orphaned if we keep it
		media.Remove(path)

		s := err.Error()
		c.JSON(status(err), PhotoResponse{
			Error: &s,
		})
		return
	}

	data := newPhoto(photo)
	c.JSON(http.StatusCreated, PhotoResponse{Data: &data})
}

// @Summary		Get photo
// @Description	Returns a specific photo record
// @Tags			Photos
// @Produce		json
// @Success		200	{object}	PhotoResponse
// @Failure		400	{object}	PhotoResponse
// @Failure		404	{object}	PhotoResponse
// @Failure		500	{object}	PhotoResponse
// @Param			id	path	uint64	true	"ID of the photo"
// @Router			/v1/photos/{id} [get]
func GetPhoto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PhotoResponse{
			Error: &s,
		})
		return
	}

	var photo models.ConsultationPhoto
	err = models.DB.First(&photo, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PhotoResponse{
			Error: &s,
		})
		return
	}

	data := newPhoto(photo)
	c.JSON(http.StatusOK, PhotoResponse{Data: &data})
}

// @Summary		Delete photo
// @Description	Deletes a photo record and its file
// @Tags			Photos
// @Success		204
// @Failure		400	{object}	PhotoResponse
// @Failure		404	{object}	PhotoResponse
// @Failure		500	{object}	PhotoResponse
// @Param			id	path	uint64	true	"ID of the photo"
// @Router			/v1/photos/{id} [delete]
func DeletePhoto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PhotoResponse{
			Error: &s,
		})
		return
	}

	var photo models.ConsultationPhoto
	err = models.DB.First(&photo, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PhotoResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Delete(&photo).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PhotoResponse{
			Error: &s,
		})
		return
	}

	media.Remove(photo.FilePath)

	c.Status(http.StatusNoContent)
}
