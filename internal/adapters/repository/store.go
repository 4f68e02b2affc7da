// Package repository holds the read-only catalogs served by the APIs.
package repository

import (
	"context"

	"github.com/biodemo/biodemo/internal/domain/model"
)

// GeneStore provides read access to the gene-expression catalog.
type GeneStore interface {
	// List returns every gene in catalog order.
	List(ctx context.Context) ([]model.Gene, error)

	// Get returns the gene with the given id.
	// Returns ErrNotFound if no gene has that id.
	Get(ctx context.Context, id int) (model.Gene, error)

	// Count returns the number of genes in the catalog.
	Count(ctx context.Context) int
}

// PatientStore provides read access to the survival study.
type PatientStore interface {
	// Study returns the study metadata and patient records in catalog order.
	Study(ctx context.Context) (model.Study, error)

	// Count returns the number of patient records.
	Count(ctx context.Context) int
}
