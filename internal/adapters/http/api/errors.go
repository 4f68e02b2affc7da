package api

// Client-facing error messages. They are part of the response contract.
const (
	msgGeneNotFound  = "Gene not found"
	msgRouteNotFound = "Not found"
	msgNotAllowed    = "Method not allowed"
	msgInternal      = "Internal server error"
)
