package models_test

import (
	"github.com/AngelVm20/consultorio-sonrisas/internal/models"
	"github.com/AngelVm20/consultorio-sonrisas/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPatientNameRequired() {
	err := models.DB.Create(&models.Patient{FirstName: "Ana"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrPatientNameMissing)

	err = models.DB.Create(&models.Patient{LastName: "Mora"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrPatientNameMissing)

	err = models.DB.Create(&models.Patient{FirstName: "   ", LastName: "Mora"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrPatientNameMissing)
}

func (suite *TestSuiteStandard) TestPatientTrimsFields() {
	patient := suite.createTestPatient(models.Patient{
		FirstName: "  Ana ",
		LastName:  " Mora  ",
		Document:  " 1712345678 ",
		Phone:     " 0998765432 ",
		Address:   "  Av. Amazonas 123 ",
	})

	assert.Equal(suite.T(), "Ana", patient.FirstName)
	assert.Equal(suite.T(), "Mora", patient.LastName)
	assert.Equal(suite.T(), "1712345678", patient.Document)
	assert.Equal(suite.T(), "0998765432", patient.Phone)
	assert.Equal(suite.T(), "Av. Amazonas 123", patient.Address)
}

func (suite *TestSuiteStandard) TestPatientBirthDateOptional() {
	patient := suite.createTestPatient(models.Patient{})
	assert.Nil(suite.T(), patient.BirthDate)

	birthDate := types.NewDate(1990, 5, 17)
	patient.BirthDate = &birthDate
	err := models.DB.Save(&patient).Error
	assert.Nil(suite.T(), err)

	var reloaded models.Patient
	err = models.DB.First(&reloaded, patient.ID).Error
	assert.Nil(suite.T(), err)
	if assert.NotNil(suite.T(), reloaded.BirthDate) {
		assert.True(suite.T(), reloaded.BirthDate.Equal(birthDate))
	}
}

func (suite *TestSuiteStandard) TestPatientNotFound() {
	var patient models.Patient
	err := models.DB.First(&patient, 7218).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "patient")
}
