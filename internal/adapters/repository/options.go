package repository

import "github.com/biodemo/biodemo/internal/domain/model"

// GeneOption applies a configuration option to a GeneCatalog.
type GeneOption func(*GeneCatalog)

// WithGenes replaces the built-in gene dataset.
func WithGenes(genes []model.Gene) GeneOption {
	return func(c *GeneCatalog) {
		if genes != nil {
			c.genes = append([]model.Gene(nil), genes...)
		}
	}
}

// PatientOption applies a configuration option to a PatientCatalog.
type PatientOption func(*PatientCatalog)

// WithStudy replaces the built-in survival study.
func WithStudy(study model.Study) PatientOption {
	return func(c *PatientCatalog) {
		c.study = model.Study{
			App:     study.App,
			Version: study.Version,
			Results: append([]model.Patient(nil), study.Results...),
		}
	}
}
