package repository

import (
	"context"

	"github.com/biodemo/biodemo/internal/domain/model"
)

// Survival study metadata.
const (
	StudyApp     = "Demo 2 - Survival Analysis"
	StudyVersion = "1.0.0"
)

var patients = []model.Patient{
	{Patient: "Patient 001", Survival: 365, Status: model.StatusAlive, Treatment: "Chemotherapy"},
	{Patient: "Patient 002", Survival: 730, Status: model.StatusAlive, Treatment: "Immunotherapy"},
	{Patient: "Patient 003", Survival: 180, Status: model.StatusDeceased, Treatment: "Targeted Therapy"},
	{Patient: "Patient 004", Survival: 540, Status: model.StatusAlive, Treatment: "Immunotherapy"},
	{Patient: "Patient 005", Survival: 270, Status: model.StatusDeceased, Treatment: "Chemotherapy"},
}

// PatientCatalog is an immutable in-memory PatientStore.
type PatientCatalog struct {
	study model.Study
}

var _ PatientStore = (*PatientCatalog)(nil)

// NewPatientCatalog returns a catalog over the built-in study.
func NewPatientCatalog(opts ...PatientOption) *PatientCatalog {
	c := &PatientCatalog{
		study: model.Study{App: StudyApp, Version: StudyVersion, Results: patients},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Study returns the study with a copy of its records.
func (c *PatientCatalog) Study(_ context.Context) (model.Study, error) {
	results := make([]model.Patient, len(c.study.Results))
	copy(results, c.study.Results)
	return model.Study{App: c.study.App, Version: c.study.Version, Results: results}, nil
}

// Count returns the number of patient records.
func (c *PatientCatalog) Count(_ context.Context) int {
	return len(c.study.Results)
}
