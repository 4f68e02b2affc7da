package repository

import (
	"context"

	"github.com/biodemo/biodemo/internal/domain/model"
)

// genes is the built-in expression dataset. Ids are 1-based and dense.
var genes = []model.Gene{
	{ID: 1, Symbol: "TP53", Expression: 12.5, Sample: "Sample A", Chromosome: "17p13.1", Function: "Tumor suppressor"},
	{ID: 2, Symbol: "BRCA1", Expression: 8.3, Sample: "Sample A", Chromosome: "17q21", Function: "DNA repair"},
	{ID: 3, Symbol: "EGFR", Expression: 15.2, Sample: "Sample A", Chromosome: "7p11.2", Function: "Growth factor receptor"},
	{ID: 4, Symbol: "KRAS", Expression: 9.7, Sample: "Sample A", Chromosome: "12p12.1", Function: "Signal transduction"},
	{ID: 5, Symbol: "PTEN", Expression: 6.4, Sample: "Sample A", Chromosome: "10q23.31", Function: "Phosphatase"},
}

// GeneCatalog is an immutable in-memory GeneStore.
type GeneCatalog struct {
	genes []model.Gene
}

var _ GeneStore = (*GeneCatalog)(nil)

// NewGeneCatalog returns a catalog over the built-in dataset.
func NewGeneCatalog(opts ...GeneOption) *GeneCatalog {
	c := &GeneCatalog{genes: genes}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns a copy of every gene in catalog order.
func (c *GeneCatalog) List(_ context.Context) ([]model.Gene, error) {
	out := make([]model.Gene, len(c.genes))
	copy(out, c.genes)
	return out, nil
}

// Get scans the catalog for id.
func (c *GeneCatalog) Get(_ context.Context, id int) (model.Gene, error) {
	for _, g := range c.genes {
		if g.ID == id {
			return g, nil
		}
	}
	return model.Gene{}, ErrNotFound
}

// Count returns the number of genes.
func (c *GeneCatalog) Count(_ context.Context) int {
	return len(c.genes)
}
