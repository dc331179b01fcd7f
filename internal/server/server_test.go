package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(Config{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

const bannerDoc = `{
	"name": "banner",
	"root": {
		"op": "framed",
		"children": [{"op": "text", "text": "hi"}]
	}
}`

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRenderText(t *testing.T) {
	ts := newTestServer(t)

	body := `{"document": ` + bannerDoc + `}`
	resp, err := http.Post(ts.URL+"/v1/render", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /v1/render: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	out, _ := io.ReadAll(resp.Body)
	if string(out) != "+--+\n|hi|\n+--+\n" {
		t.Errorf("body = %q", out)
	}
	if got := resp.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("X-Cache = %q, want MISS", got)
	}
	if resp.Header.Get("X-Doc-Hash") == "" {
		t.Error("X-Doc-Hash should be set")
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID should be set")
	}
}

func TestRenderJSON(t *testing.T) {
	ts := newTestServer(t)

	body := `{"document": ` + bannerDoc + `, "options": {"format": "json"}}`
	resp, err := http.Post(ts.URL+"/v1/render", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /v1/render: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var env struct {
		Height int `json:"height"`
		Width  int `json:"width"`
		Render struct {
			Lines []string `json:"lines"`
		} `json:"render"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Height != 3 || env.Width != 4 {
		t.Errorf("dimensions = %dx%d, want 3x4", env.Height, env.Width)
	}
	if len(env.Render.Lines) != 3 || env.Render.Lines[1] != "|hi|" {
		t.Errorf("lines = %q", env.Render.Lines)
	}
}

func TestRenderErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DOCUMENT",
		},
		{
			name:       "no document",
			body:       `{"options": {}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DOCUMENT",
		},
		{
			name:       "unknown op",
			body:       `{"document": {"root": {"op": "nope"}}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DOCUMENT",
		},
		{
			name:       "negative fill",
			body:       `{"document": {"root": {"op": "fill", "char": "x", "height": -1, "width": 2}}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_DIMENSION",
		},
		{
			name:       "bad format",
			body:       `{"document": ` + bannerDoc + `, "options": {"format": "svg"}}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/v1/render", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST /v1/render: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			var env struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
				t.Fatalf("decode error envelope: %v", err)
			}
			if env.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", env.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestDocumentLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// Create
	resp, err := http.Post(ts.URL+"/v1/documents", "application/json", strings.NewReader(bannerDoc))
	if err != nil {
		t.Fatalf("POST /v1/documents: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	resp.Body.Close()
	if created.ID == "" {
		t.Fatal("created document has no ID")
	}
	if created.Name != "banner" {
		t.Errorf("Name = %q, want %q", created.Name, "banner")
	}

	// Get
	resp, err = http.Get(ts.URL + "/v1/documents/" + created.ID)
	if err != nil {
		t.Fatalf("GET document: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("get status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	// List
	resp, err = http.Get(ts.URL + "/v1/documents")
	if err != nil {
		t.Fatalf("GET documents: %v", err)
	}
	var list []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	resp.Body.Close()
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("list = %+v", list)
	}

	// Render stored document
	resp, err = http.Post(ts.URL+"/v1/documents/"+created.ID+"/render", "application/json", nil)
	if err != nil {
		t.Fatalf("POST render: %v", err)
	}
	out, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(out) != "+--+\n|hi|\n+--+\n" {
		t.Errorf("rendered body = %q", out)
	}

	// Update
	updated := `{"name": "banner2", "root": {"op": "text", "text": "bye"}}`
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/v1/documents/"+created.ID, strings.NewReader(updated))
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT document: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("update status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	// Delete
	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/v1/documents/"+created.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE document: %v", err)
	}
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	// Gone
	resp, err = http.Get(ts.URL + "/v1/documents/" + created.ID)
	if err != nil {
		t.Fatalf("GET deleted document: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGetUnknownDocument(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/documents/no-such-id")
	if err != nil {
		t.Fatalf("GET document: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-id-7")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "caller-id-7" {
		t.Errorf("X-Request-ID = %q, want caller-id-7", got)
	}
}
