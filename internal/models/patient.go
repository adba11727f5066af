package models

import (
	"strings"

	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"gorm.io/gorm"
)

// Patient represents a person in the clinic's patient directory.
type Patient struct {
	DefaultModel
	FirstName string
	LastName  string
	Document  string // National ID card number, optional
	Phone     string
	BirthDate *types.Date
	Address   string
}

func (p Patient) Self() string {
	return "Patient"
}

// BeforeSave trims whitespace from string fields and checks required ones.
func (p *Patient) BeforeSave(_ *gorm.DB) (err error) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Document = strings.TrimSpace(p.Document)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)

	if p.FirstName == "" || p.LastName == "" {
		return ErrPatientNameMissing
	}

	return nil
}

// BeforeDelete removes the patient's consultations one by one so that their
// own lifecycle hooks run and derived ledger entries are cleaned up inside
// the same transaction.
func (p *Patient) BeforeDelete(tx *gorm.DB) (err error) {
	var consultations []Consultation
	err = tx.Where("patient_id = ?", p.ID).Find(&consultations).Error
	if err != nil {
		return err
	}

	for _, consultation := range consultations {
		err = tx.Delete(&consultation).Error
		if err != nil {
			return err
		}
	}

	return nil
}
