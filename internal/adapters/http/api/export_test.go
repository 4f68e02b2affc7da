package api

// ParseGeneIDForTest exposes parseGeneID to the external test package.
var ParseGeneIDForTest = parseGeneID
