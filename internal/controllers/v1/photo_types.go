package v1

import (
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
)

// Photo is the API representation of a consultation photo.
type Photo struct {
	models.DefaultModel
	ConsultationID uint64 `json:"consultationId" example:"17"`
	FilePath       string `json:"filePath" example:"data/media/4/2024-01-08_1ceedc9e-3a53-4ecb-b6b6-6a59443f9be4.jpg"`
	Description    string `json:"description" example:"Before the cleaning"`
	Position       uint   `json:"position" example:"1"`
}

func newPhoto(photo models.ConsultationPhoto) Photo {
	return Photo{
		DefaultModel:   photo.DefaultModel,
		ConsultationID: photo.ConsultationID,
		FilePath:       photo.FilePath,
		Description:    photo.Description,
		Position:       photo.Position,
	}
}

type PhotoResponse struct {
	Data  *Photo  `json:"data"`
	Error *string `json:"error" example:"A human readable error message"`
}

type PhotoListResponse struct {
	Data  []Photo `json:"data"`
	Error *string `json:"error" example:"A human readable error message"`
}
