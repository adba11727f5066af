package models

import (
	"gorm.io/gorm"
)

// MaxPhotosPerConsultation caps how many photos can be attached to a single
// consultation.
const MaxPhotosPerConsultation = 10

// ConsultationPhoto is the record for one photo attached to a consultation.
// The image itself lives on disk, only the path is stored.
type ConsultationPhoto struct {
	DefaultModel
	ConsultationID uint64 `gorm:"index"`
	Consultation   Consultation
	FilePath       string
	Description    string
	Position       uint // Display order within the consultation, starting at 1
}

func (p ConsultationPhoto) Self() string {
	return "ConsultationPhoto"
}

// BeforeCreate enforces the photo cap and defaults the position to the end
// of the list.
func (p *ConsultationPhoto) BeforeCreate(tx *gorm.DB) (err error) {
	var count int64
	err = tx.Model(&ConsultationPhoto{}).Where("consultation_id = ?", p.ConsultationID).Count(&count).Error
	if err != nil {
		return err
	}

	if count >= MaxPhotosPerConsultation {
		return ErrTooManyPhotos
	}

	if p.Position == 0 {
		p.Position = uint(count) + 1
	}

	return nil
}

// PhotoPathsForPatient returns the file paths of all photos attached to any
// of a patient's consultations. Used to clean up the media directory after a
// patient is deleted.
func PhotoPathsForPatient(db *gorm.DB, patientID uint64) ([]string, error) {
	var paths []string
	err := db.Model(&ConsultationPhoto{}).
		Joins("JOIN consultations ON consultations.id = consultation_photos.consultation_id").
		Where("consultations.patient_id = ?", patientID).
		Pluck("consultation_photos.file_path", &paths).Error
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// PhotosForConsultation returns a consultation's photos in display order.
func PhotosForConsultation(db *gorm.DB, consultationID uint64) ([]ConsultationPhoto, error) {
	var photos []ConsultationPhoto
	err := db.
		Where("consultation_id = ?", consultationID).
		Order("position ASC, id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}

	return photos, nil
}
