package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/biodemo/biodemo/internal/adapters/repository"
	"github.com/biodemo/biodemo/internal/domain/model"
	"github.com/biodemo/biodemo/pkg/logger"
	"github.com/biodemo/biodemo/pkg/metrics"
	"github.com/gorilla/mux"
)

// GenesHandler handles gene list and detail requests.
type GenesHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewGenesHandler creates a new genes handler.
func NewGenesHandler(deps Dependencies, log logger.Logger) *GenesHandler {
	return &GenesHandler{deps: deps, logger: log}
}

// HandleList handles GET /genes. Records are rendered without function.
func (h *GenesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	genes, err := h.deps.List(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "list genes failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	metrics.RecordRecordsServed(metrics.DatasetGenes, len(genes))
	writeData(w, model.Summaries(genes))
}

// HandleGet handles GET /genes/{id}. Ids that do not parse are treated like
// unknown ids.
func (h *GenesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGeneID(mux.Vars(r)["id"])
	if !ok {
		metrics.RecordGeneLookup(false)
		writeError(w, http.StatusNotFound, msgGeneNotFound)
		return
	}

	gene, err := h.deps.Get(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		metrics.RecordGeneLookup(false)
		writeError(w, http.StatusNotFound, msgGeneNotFound)
	case err != nil:
		h.logger.Error(r.Context(), "get gene failed", logger.Int("id", id), logger.Error(err))
		writeError(w, http.StatusInternalServerError, msgInternal)
	default:
		metrics.RecordGeneLookup(true)
		metrics.RecordRecordsServed(metrics.DatasetGenes, 1)
		writeData(w, gene)
	}
}

// parseGeneID reads the leading integer of s after optional whitespace and
// sign, so "2abc" is 2 while "abc" and "" are not ids. A 0x or 0X prefix
// selects hexadecimal, so "0x5" is 5.
func parseGeneID(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return int(n), true
}

func isDecimal(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
