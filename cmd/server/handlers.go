package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ukrphon/ipauk"
	"github.com/ukrphon/ipauk/internal/config"
)

// ---- JSON response types ------------------------------------------------

type transcribeResponse struct {
	Text string `json:"text"`
	IPA  string `json:"ipa"`
}

type batchRequest struct {
	Texts       []string `json:"texts"`
	CheckAccent *bool    `json:"check_accent"`
}

type batchResultJSON struct {
	Text  string `json:"text"`
	IPA   string `json:"ipa"`
	Error string `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchResultJSON `json:"results"`
}

type stepJSON struct {
	Stage  string `json:"stage"`
	Output string `json:"output"`
}

type tokenTraceJSON struct {
	Token string     `json:"token"`
	IPA   string     `json:"ipa"`
	Steps []stepJSON `json:"steps"`
}

type traceResponse struct {
	Text   string           `json:"text"`
	Tokens []tokenTraceJSON `json:"tokens"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeTranscribeError maps a transcription failure to its HTTP status.
func writeTranscribeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ipauk.ErrAccentMissing) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	slog.Error("transcription failed", slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

// textParams reads the text and check_accent query parameters. ok is false
// when an error response has been written.
func textParams(w http.ResponseWriter, r *http.Request, cfg config.TranscribeConfig) (text string, checkAccent, ok bool) {
	q := r.URL.Query()
	text = q.Get("text")
	if text == "" {
		writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
		return "", false, false
	}
	if int64(len(text)) > cfg.MaxInputBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text is longer than %d bytes", cfg.MaxInputBytes))
		return "", false, false
	}

	checkAccent = cfg.CheckAccent
	if raw := q.Get("check_accent"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "'check_accent' must be a boolean")
			return "", false, false
		}
		checkAccent = v
	}
	return text, checkAccent, true
}

// ---- handlers -----------------------------------------------------------

func handleTranscribe(cfg config.TranscribeConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text, checkAccent, ok := textParams(w, r, cfg)
		if !ok {
			return
		}

		ipa, err := ipauk.Transcribe(text, checkAccent)
		if err != nil {
			writeTranscribeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, transcribeResponse{Text: text, IPA: ipa})
	}
}

func handleBatch(cfg config.TranscribeConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}

		// Every item may use its full allowance plus JSON quoting.
		limit := (cfg.MaxInputBytes + 16) * int64(cfg.BatchMaxItems)
		var body batchRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(&body); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'texts' array")
			return
		}
		if len(body.Texts) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'texts' array")
			return
		}
		if len(body.Texts) > cfg.BatchMaxItems {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("too many texts: %d (max %d)", len(body.Texts), cfg.BatchMaxItems))
			return
		}
		for i, t := range body.Texts {
			if int64(len(t)) > cfg.MaxInputBytes {
				writeError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("texts[%d] is longer than %d bytes", i, cfg.MaxInputBytes))
				return
			}
		}

		opts := ipauk.BatchOptions{CheckAccent: cfg.CheckAccent, Workers: cfg.BatchWorkers}
		if body.CheckAccent != nil {
			opts.CheckAccent = *body.CheckAccent
		}

		results := ipauk.TranscribeAll(r.Context(), body.Texts, opts)
		out := make([]batchResultJSON, 0, len(results))
		failed := 0
		for _, res := range results {
			rj := batchResultJSON{Text: res.Text, IPA: res.IPA}
			if res.Err != nil {
				rj.Error = res.Err.Error()
				failed++
			}
			out = append(out, rj)
		}
		slog.DebugContext(r.Context(), "batch transcribed",
			slog.Int("items", len(results)),
			slog.Int("failed", failed),
		)
		writeJSON(w, http.StatusOK, batchResponse{Results: out})
	}
}

func handleTrace(cfg config.TranscribeConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text, checkAccent, ok := textParams(w, r, cfg)
		if !ok {
			return
		}

		traces, err := ipauk.Trace(text, checkAccent)
		if err != nil {
			writeTranscribeError(w, err)
			return
		}

		tokens := make([]tokenTraceJSON, 0, len(traces))
		for _, tt := range traces {
			steps := make([]stepJSON, 0, len(tt.Steps))
			for _, s := range tt.Steps {
				steps = append(steps, stepJSON{Stage: string(s.Stage), Output: s.Output})
			}
			tokens = append(tokens, tokenTraceJSON{Token: tt.Token, IPA: tt.IPA, Steps: steps})
		}
		writeJSON(w, http.StatusOK, traceResponse{Text: text, Tokens: tokens})
	}
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: ipauk.Version})
	}
}

// newMux registers the API routes.
func newMux(cfg config.TranscribeConfig) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/transcribe/batch", handleBatch(cfg))
	mux.HandleFunc("/api/transcribe", handleTranscribe(cfg))
	mux.HandleFunc("/api/trace", handleTrace(cfg))
	mux.HandleFunc("/api/health", handleHealth())
	return mux
}
