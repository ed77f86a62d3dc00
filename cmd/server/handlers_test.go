package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukrphon/ipauk"
	"github.com/ukrphon/ipauk/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		CORS: config.CORSConfig{
			AllowedOrigins: "https://example.com",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
			MaxAge:         600,
		},
		Log:        config.LogConfig{Level: "debug", Format: "json"},
		Transcribe: config.TranscribeConfig{CheckAccent: true, MaxInputBytes: 64, BatchMaxItems: 3},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	srv := httptest.NewServer(newHandler(testConfig(), log))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string, q url.Values) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(srv.URL + path + "?" + q.Encode())
	require.NoError(t, err)
	return resp, decode(t, resp)
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp, decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestTranscribeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		q          url.Values
		wantStatus int
		wantIPA    string
		wantErr    string
	}{
		{"accented", url.Values{"text": {"Сла" + ipauk.Acute + "ва"}}, http.StatusOK, "ˈsɫaʋɐ", ""},
		{"phrase", url.Values{"text": {"Сла" + ipauk.Acute + "ва Украї" + ipauk.Acute + "ні"}}, http.StatusOK, "ˈsɫaʋɐ ʊkrɐˈjinʲi", ""},
		{"accent missing", url.Values{"text": {"Слава"}}, http.StatusUnprocessableEntity, "", "missing an accent"},
		{"check disabled", url.Values{"text": {"Слава"}, "check_accent": {"false"}}, http.StatusOK, "sɫɐʋɐ", ""},
		{"bad check_accent", url.Values{"text": {"лев"}, "check_accent": {"maybe"}}, http.StatusBadRequest, "", "check_accent"},
		{"missing text", url.Values{}, http.StatusBadRequest, "", "missing 'text'"},
		{"too long", url.Values{"text": {strings.Repeat("а", 40)}}, http.StatusRequestEntityTooLarge, "", "longer than 64 bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv, "/api/transcribe", tt.q)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantErr != "" {
				assert.Contains(t, body["error"], tt.wantErr)
				return
			}
			assert.Equal(t, tt.q.Get("text"), body["text"])
			assert.Equal(t, tt.wantIPA, body["ipa"])
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/transcribe", "/api/trace", "/api/health"} {
		resp, body := post(t, srv, path, "{}")
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, path)
		assert.Equal(t, "GET required", body["error"])
	}

	resp, body := get(t, srv, "/api/transcribe/batch", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "POST required", body["error"])
}

func TestBatchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req, err := json.Marshal(batchRequest{Texts: []string{"Сла" + ipauk.Acute + "ва", "вода", "лев"}})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/transcribe/batch", "application/json", bytes.NewReader(req))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out batchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Results, 3)

	assert.Equal(t, batchResultJSON{Text: "Сла" + ipauk.Acute + "ва", IPA: "ˈsɫaʋɐ"}, out.Results[0])
	assert.Equal(t, "вода", out.Results[1].Text)
	assert.Empty(t, out.Results[1].IPA)
	assert.Contains(t, out.Results[1].Error, "missing an accent")
	assert.Equal(t, "ɫɛu̯", out.Results[2].IPA)
}

func TestBatchEndpointCheckAccentOverride(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv, "/api/transcribe/batch", `{"texts":["вода"],"check_accent":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	results := body["results"].([]any)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, "wɔdɐ", first["ipa"])
	assert.NotContains(t, first, "error")
}

func TestBatchEndpointRejects(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantErr    string
	}{
		{"invalid json", `{"texts":`, http.StatusBadRequest, "'texts'"},
		{"empty list", `{"texts":[]}`, http.StatusBadRequest, "'texts'"},
		{"too many", `{"texts":["a","b","c","d"]}`, http.StatusBadRequest, "too many texts"},
		{"item too long", `{"texts":["лев","` + strings.Repeat("а", 40) + `"]}`, http.StatusRequestEntityTooLarge, "texts[1]"},
		{"body too large", `{"texts":["` + strings.Repeat("а", 400) + `"]}`, http.StatusRequestEntityTooLarge, "too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, srv, "/api/transcribe/batch", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, body["error"], tt.wantErr)
		})
	}
}

func TestTraceEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/trace?" + url.Values{"text": {"Сла" + ipauk.Acute + "ва"}}.Encode())
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out traceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Tokens, 1)

	tok := out.Tokens[0]
	assert.Equal(t, "ˈsɫaʋɐ", tok.IPA)
	require.Len(t, tok.Steps, 6)
	assert.Equal(t, "orthography", tok.Steps[0].Stage)
	assert.Equal(t, stepJSON{Stage: "stress", Output: "#ˈslaʋɐ#"}, tok.Steps[4])
	assert.Equal(t, "final", tok.Steps[5].Stage)
}

func TestTraceEndpointAccentMissing(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/trace", url.Values{"text": {"вода"}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["error"], "missing an accent")
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, ipauk.Version, body["version"])
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)

	preflight := func(origin string) *http.Response {
		req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/transcribe", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	resp := preflight("https://example.com")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "600", resp.Header.Get("Access-Control-Max-Age"))

	resp = preflight("https://evil.example")
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "https://example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}
