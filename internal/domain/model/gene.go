// Package model contains domain models passed between layers.
package model

// Gene is one gene-expression record. Function is only rendered by the
// detail view; list responses use GeneSummary.
type Gene struct {
	ID         int     `json:"id"`
	Symbol     string  `json:"gene"`
	Expression float64 `json:"expression"`
	Sample     string  `json:"sample"`
	Chromosome string  `json:"chromosome"`
	Function   string  `json:"function"`
}

// GeneSummary is the list view of a Gene.
type GeneSummary struct {
	ID         int     `json:"id"`
	Symbol     string  `json:"gene"`
	Expression float64 `json:"expression"`
	Sample     string  `json:"sample"`
	Chromosome string  `json:"chromosome"`
}

// Summary drops the detail-only fields.
func (g Gene) Summary() GeneSummary {
	return GeneSummary{
		ID:         g.ID,
		Symbol:     g.Symbol,
		Expression: g.Expression,
		Sample:     g.Sample,
		Chromosome: g.Chromosome,
	}
}

// Summaries maps genes to their list view, preserving order.
func Summaries(genes []Gene) []GeneSummary {
	out := make([]GeneSummary, len(genes))
	for i, g := range genes {
		out[i] = g.Summary()
	}
	return out
}
