package v1_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"testing"

	v1 "github.com/AngelVm20/consultorio-sonrisas/internal/controllers/v1"
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/AngelVm20/consultorio-sonrisas/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadTestPhoto sends a multipart upload for a consultation.
func uploadTestPhoto(t *testing.T, consultationID uint64, filename, description string, expectedStatus ...int) v1.PhotoResponse {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	part, err := writer.CreateFormFile("file", filename)
	require.Nil(t, err)
	_, err = part.Write([]byte("image bytes"))
	require.Nil(t, err)

	if description != "" {
		require.Nil(t, writer.WriteField("description", description))
	}
	require.Nil(t, writer.Close())

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/consultations/%d/photos", consultationID), &buffer, map[string]string{
		"Content-Type": writer.FormDataContentType(),
	})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.PhotoResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestPhotosUpload() {
	suite.T().Setenv("MEDIA_DIR", suite.T().TempDir())

	consultation := createTestConsultation(suite.T(), v1.ConsultationEditable{})

	response := uploadTestPhoto(suite.T(), consultation.Data.ID, "xray.JPG", "Before the filling")

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), consultation.Data.ID, response.Data.ConsultationID)
	assert.Equal(suite.T(), "Before the filling", response.Data.Description)
	assert.Equal(suite.T(), uint(1), response.Data.Position)

	// The image was written to the media directory
	content, err := os.ReadFile(response.Data.FilePath)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "image bytes", string(content))
}

func (suite *TestSuiteStandard) TestPhotosUploadInvalid() {
	suite.T().Setenv("MEDIA_DIR", suite.T().TempDir())

	consultation := createTestConsultation(suite.T(), v1.ConsultationEditable{})

	// Unsupported file type
	_ = uploadTestPhoto(suite.T(), consultation.Data.ID, "report.pdf", "", http.StatusBadRequest)

	// No file at all
	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/consultations/%d/photos", consultation.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Unknown consultation
	_ = uploadTestPhoto(suite.T(), 4812, "xray.jpg", "", http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestPhotosUploadCap() {
	suite.T().Setenv("MEDIA_DIR", suite.T().TempDir())

	consultation := createTestConsultation(suite.T(), v1.ConsultationEditable{})

	for i := 0; i < models.MaxPhotosPerConsultation; i++ {
		_ = uploadTestPhoto(suite.T(), consultation.Data.ID, fmt.Sprintf("photo-%d.png", i), "")
	}

	response := uploadTestPhoto(suite.T(), consultation.Data.ID, "one-too-many.png", "", http.StatusBadRequest)
	assert.Contains(suite.T(), *response.Error, "at most")
}

func (suite *TestSuiteStandard) TestPhotosList() {
	suite.T().Setenv("MEDIA_DIR", suite.T().TempDir())

	consultation := createTestConsultation(suite.T(), v1.ConsultationEditable{})
	first := uploadTestPhoto(suite.T(), consultation.Data.ID, "a.jpg", "")
	second := uploadTestPhoto(suite.T(), consultation.Data.ID, "b.webp", "")

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/consultations/%d/photos", consultation.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PhotoListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), first.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), second.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestPhotosDelete() {
	suite.T().Setenv("MEDIA_DIR", suite.T().TempDir())

	consultation := createTestConsultation(suite.T(), v1.ConsultationEditable{})
	photo := uploadTestPhoto(suite.T(), consultation.Data.ID, "gone.jpg", "")

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/photos/%d", photo.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Both the record and the file are gone
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/photos/%d", photo.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	_, err := os.Stat(photo.Data.FilePath)
	assert.True(suite.T(), os.IsNotExist(err))
}

func (suite *TestSuiteStandard) TestPhotosDeleteWithConsultation() {
	suite.T().Setenv("MEDIA_DIR", suite.T().TempDir())

	consultation := createTestConsultation(suite.T(), v1.ConsultationEditable{})
	photo := uploadTestPhoto(suite.T(), consultation.Data.ID, "cascade.jpg", "")

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/consultations/%d", consultation.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	_, err := os.Stat(photo.Data.FilePath)
	assert.True(suite.T(), os.IsNotExist(err), "photo files must be cleaned up with the consultation")
}
