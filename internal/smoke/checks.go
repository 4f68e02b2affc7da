package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/biodemo/biodemo/internal/domain/model"
	"github.com/google/uuid"
)

// Services probed by the checks.
const (
	ServiceGene     = "gene-api"
	ServiceSurvival = "survival"
	ServiceFrontend = "frontend"
)

// Contract values every deployment must return.
const (
	healthService = "demo1-backend"
	geneNotFound  = "Gene not found"
	geneCount     = 5
	studyApp      = "Demo 2 - Survival Analysis"
	studyVersion  = "1.0.0"
	patientCount  = 5
	firstGene     = "TP53"
	firstGeneRole = "Tumor suppressor"
)

// Check is one verifiable property of a running service.
type Check struct {
	Service string
	Name    string
	Run     func(ctx context.Context, c *HTTPClient, base string) error
}

// Checks returns every check in report order.
func Checks() []Check {
	return []Check{
		{ServiceGene, "health reports healthy", checkHealth},
		{ServiceGene, "list returns five summaries", checkGeneList},
		{ServiceGene, "detail returns TP53", checkGeneDetail},
		{ServiceGene, "unknown id returns 404", checkGeneMissing},
		{ServiceGene, "non-numeric id returns 404", checkGeneNonNumeric},
		{ServiceSurvival, "page is HTML", checkSurvivalPage},
		{ServiceSurvival, "results return five patients", checkSurvivalResults},
		{ServiceFrontend, "undefined paths fall back to index", checkFrontendFallback},
	}
}

func checkHealth(ctx context.Context, c *HTTPClient, base string) error {
	resp, err := c.Get(ctx, base, "/health")
	if err != nil {
		return err
	}
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedBody, err)
	}
	if len(body) != 3 || body["success"] != true || body["status"] != "healthy" || body["service"] != healthService {
		return fmt.Errorf("%w: %s", ErrUnexpectedBody, resp.Body)
	}
	return nil
}

func checkGeneList(ctx context.Context, c *HTTPClient, base string) error {
	resp, err := c.Get(ctx, base, "/genes")
	if err != nil {
		return err
	}
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}
	var body struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedBody, err)
	}
	if !body.Success || len(body.Data) != geneCount {
		return fmt.Errorf("%w: want %d records, got %d", ErrUnexpectedBody, geneCount, len(body.Data))
	}
	for i, g := range body.Data {
		if id, _ := g["id"].(float64); int(id) != i+1 {
			return fmt.Errorf("%w: record %d has id %v", ErrUnexpectedBody, i, g["id"])
		}
		if _, ok := g["function"]; ok {
			return fmt.Errorf("%w: record %d exposes function", ErrUnexpectedBody, i)
		}
	}
	return nil
}

func checkGeneDetail(ctx context.Context, c *HTTPClient, base string) error {
	resp, err := c.Get(ctx, base, "/genes/1")
	if err != nil {
		return err
	}
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}
	var body struct {
		Success bool       `json:"success"`
		Data    model.Gene `json:"data"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedBody, err)
	}
	if !body.Success || body.Data.ID != 1 || body.Data.Symbol != firstGene || body.Data.Function != firstGeneRole {
		return fmt.Errorf("%w: %s", ErrUnexpectedBody, resp.Body)
	}
	return nil
}

func checkGeneMissing(ctx context.Context, c *HTTPClient, base string) error {
	return expectGeneNotFound(ctx, c, base, "/genes/999")
}

func checkGeneNonNumeric(ctx context.Context, c *HTTPClient, base string) error {
	return expectGeneNotFound(ctx, c, base, "/genes/abc")
}

func expectGeneNotFound(ctx context.Context, c *HTTPClient, base, path string) error {
	resp, err := c.Get(ctx, base, path)
	if err != nil {
		return err
	}
	if err := expectStatus(resp, http.StatusNotFound); err != nil {
		return err
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedBody, err)
	}
	if len(body) != 2 || body["success"] != false || body["error"] != geneNotFound {
		return fmt.Errorf("%w: %s", ErrUnexpectedBody, resp.Body)
	}
	return nil
}

func checkSurvivalPage(ctx context.Context, c *HTTPClient, base string) error {
	resp, err := c.Get(ctx, base, "/")
	if err != nil {
		return err
	}
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "text/html" {
		return fmt.Errorf("%w: content type %q", ErrUnexpectedBody, resp.Header.Get("Content-Type"))
	}
	return nil
}

func checkSurvivalResults(ctx context.Context, c *HTTPClient, base string) error {
	resp, err := c.Get(ctx, base, "/api/results")
	if err != nil {
		return err
	}
	if err := expectStatus(resp, http.StatusOK); err != nil {
		return err
	}
	// Decoding rejects any status outside Alive and Deceased.
	var study model.Study
	if err := json.Unmarshal(resp.Body, &study); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedBody, err)
	}
	if study.App != studyApp || study.Version != studyVersion || len(study.Results) != patientCount {
		return fmt.Errorf("%w: %s", ErrUnexpectedBody, resp.Body)
	}
	for i, p := range study.Results {
		if want := fmt.Sprintf("Patient %03d", i+1); p.Patient != want {
			return fmt.Errorf("%w: result %d is %q, want %q", ErrUnexpectedBody, i, p.Patient, want)
		}
	}
	return nil
}

func checkFrontendFallback(ctx context.Context, c *HTTPClient, base string) error {
	root, err := c.Get(ctx, base, "/")
	if err != nil {
		return err
	}
	if err := expectStatus(root, http.StatusOK); err != nil {
		return err
	}
	for _, path := range []string{"/genes/1", "/smoke/" + uuid.NewString()} {
		resp, err := c.Get(ctx, base, path)
		if err != nil {
			return err
		}
		if err := expectStatus(resp, http.StatusOK); err != nil {
			return err
		}
		if !bytes.Equal(resp.Body, root.Body) {
			return fmt.Errorf("%w: %s differs from /", ErrUnexpectedBody, path)
		}
	}
	return nil
}
