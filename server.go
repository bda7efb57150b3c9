package gkverb

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsMRSoL/greek-verb-writer/logger"
)

// ---- JSON response types ------------------------------------------------

type conjugationJSON struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Forms       []string `json:"forms"`
}

type conjugateResponse struct {
	Stem    string            `json:"stem"`
	Tense   string            `json:"tense"`
	Results []conjugationJSON `json:"results"`
}

type codeJSON struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type codesResponse struct {
	Codes []codeJSON `json:"codes"`
}

type lookupRowJSON struct {
	Stem   string `json:"stem"`
	Code   string `json:"code"`
	Person int    `json:"person"`
	Number string `json:"number"`
	Form   string `json:"form"`
}

type lookupResponse struct {
	Form    string          `json:"form"`
	Matches []lookupRowJSON `json:"matches"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger.Errorw("encode error", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// parseCodesParam splits a comma-separated tvm query value into codes.
func parseCodesParam(s string) []Code {
	var codes []Code
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			codes = append(codes, Code(part))
		}
	}
	return codes
}

// ---- handlers -----------------------------------------------------------

func handleConjugate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		stem := r.URL.Query().Get("stem")
		if stem == "" {
			writeError(w, http.StatusBadRequest, "missing 'stem' query parameter")
			return
		}
		all, _ := strconv.ParseBool(r.URL.Query().Get("all"))
		codes := parseCodesParam(r.URL.Query().Get("tvm"))
		if len(codes) == 0 && !all {
			writeError(w, http.StatusBadRequest, "provide 'tvm' codes or 'all=true'")
			return
		}

		vb := NewVerb(stem)
		requested := vb.ConjugateAll(codes)

		results := make([]conjugationJSON, 0, len(requested))
		for _, code := range requested {
			forms, ok := vb.Forms(code)
			if !ok {
				// unknown codes are skipped, same as the CLI paths
				continue
			}
			results = append(results, conjugationJSON{
				Code:        string(code),
				Description: code.Description(),
				Forms:       forms,
			})
		}
		writeJSON(w, http.StatusOK, conjugateResponse{
			Stem:    vb.Stem.Text,
			Tense:   vb.Stem.Tense.String(),
			Results: results,
		})
	}
}

func handleCodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		out := make([]codeJSON, 0, len(Codes))
		for _, c := range Codes {
			out = append(out, codeJSON{Code: string(c), Description: c.Description()})
		}
		writeJSON(w, http.StatusOK, codesResponse{Codes: out})
	}
}

func handleLookup(lex *Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		if lex == nil {
			writeError(w, http.StatusNotFound, "no lexicon configured")
			return
		}
		form := r.URL.Query().Get("form")
		if form == "" {
			writeError(w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		rows, err := lex.LookupBare(form)
		if err != nil {
			logger.Logger.Errorw("lexicon lookup failed", "form", form, "error", err)
			writeError(w, http.StatusInternalServerError, "lexicon lookup failed")
			return
		}
		matches := make([]lookupRowJSON, 0, len(rows))
		for _, row := range rows {
			matches = append(matches, lookupRowJSON{
				Stem:   row.Stem,
				Code:   string(row.Code),
				Person: row.Person,
				Number: row.Number,
				Form:   row.Form,
			})
		}
		status := http.StatusOK
		if len(matches) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, status, lookupResponse{Form: form, Matches: matches})
	}
}

// NewHandler returns the conjugation API. lex may be nil, in which case
// /api/lookup reports that no lexicon is configured.
//
// Endpoints:
//
//	GET /api/conjugate?stem=pres:παυ&tvm=pai,ppi   (or &all=true)
//	GET /api/codes
//	GET /api/lookup?form=παυεις
func NewHandler(lex *Lexicon) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/conjugate", handleConjugate())
	mux.HandleFunc("/api/codes", handleCodes())
	mux.HandleFunc("/api/lookup", handleLookup(lex))
	return mux
}
