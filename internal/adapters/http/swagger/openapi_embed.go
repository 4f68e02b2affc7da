package swagger

import _ "embed"

// GeneAPISpec contains the embedded OpenAPI YAML for the gene API.
//
//go:embed specs/genes.yaml
var GeneAPISpec []byte

// SurvivalAPISpec contains the embedded OpenAPI YAML for the survival API.
//
//go:embed specs/survival.yaml
var SurvivalAPISpec []byte

// GeneAPI documents the gene API.
var GeneAPI = Document{Title: "Gene Expression API", Spec: GeneAPISpec}

// SurvivalAPI documents the survival-analysis API.
var SurvivalAPI = Document{Title: "Survival Analysis API", Spec: SurvivalAPISpec}
