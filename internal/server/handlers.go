package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/boxkit/pkg/doc"
	"github.com/matzehuels/boxkit/pkg/errors"
	"github.com/matzehuels/boxkit/pkg/pipeline"
	"github.com/matzehuels/boxkit/pkg/store"
)

// maxBodyBytes caps request bodies; layout documents are small.
const maxBodyBytes = 1 << 20

// renderRequest is the body of POST /v1/render.
type renderRequest struct {
	Document *doc.Document    `json:"document"`
	Options  pipeline.Options `json:"options"`
}

// renderResponse wraps the pipeline result for JSON-format responses.
type renderResponse struct {
	DocHash string          `json:"doc_hash,omitempty"`
	Height  int             `json:"height"`
	Width   int             `json:"width"`
	Cached  bool            `json:"cached"`
	Render  json.RawMessage `json:"render"`
}

// documentResponse is the envelope for stored documents.
type documentResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name,omitempty"`
	Document  *doc.Document `json:"document,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

func toDocumentResponse(rec *store.Record, includeBody bool) documentResponse {
	resp := documentResponse{
		ID:        rec.ID,
		Name:      rec.Name,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: rec.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if includeBody {
		resp.Document = rec.Document
	}
	return resp
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, bodyErr(err))
		return
	}
	if req.Document == nil {
		writeError(w, errors.New(errors.ErrCodeInvalidDocument, "request has no document"))
		return
	}
	s.render(w, r, req.Document, req.Options)
}

func (s *Server) handleRenderDocument(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	// Options are optional for stored documents; an empty body means
	// defaults.
	var opts pipeline.Options
	if err := decodeBody(r, &opts); err != nil && err != io.EOF {
		writeError(w, err)
		return
	}
	s.render(w, r, rec.Document, opts)
}

// render runs the pipeline and writes the output. Text renders are served
// as plain text; JSON renders are wrapped in a response envelope with the
// run's metadata. Cache status is reported in X-Cache either way.
func (s *Server) render(w http.ResponseWriter, r *http.Request, d *doc.Document, opts pipeline.Options) {
	res, err := s.runner.Execute(r.Context(), d, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	cacheStatus := "MISS"
	if res.CacheInfo.RenderHit {
		cacheStatus = "HIT"
	}
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Doc-Hash", res.DocHash)

	if opts.Format == pipeline.FormatJSON {
		writeJSON(w, http.StatusOK, renderResponse{
			DocHash: res.DocHash,
			Height:  res.Height,
			Width:   res.Width,
			Cached:  res.CacheInfo.RenderHit,
			Render:  json.RawMessage(res.Output),
		})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Output)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var d doc.Document
	if err := decodeBody(r, &d); err != nil {
		writeError(w, bodyErr(err))
		return
	}
	if err := d.Validate(); err != nil {
		writeError(w, err)
		return
	}

	rec := store.NewRecord(&d)
	if err := s.store.Put(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info("stored document", "id", rec.ID, "name", rec.Name)
	writeJSON(w, http.StatusCreated, toDocumentResponse(rec, true))
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]documentResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDocumentResponse(rec, false))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(rec, true))
}

func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var d doc.Document
	if err := decodeBody(r, &d); err != nil {
		writeError(w, bodyErr(err))
		return
	}
	if err := d.Validate(); err != nil {
		writeError(w, err)
		return
	}

	rec.Name = d.Name
	rec.Document = &d
	if err := s.store.Put(r.Context(), rec); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentResponse(rec, true))
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bodyErr converts the io.EOF of an empty body into a coded error for
// handlers that require one.
func bodyErr(err error) error {
	if err == io.EOF {
		return errors.New(errors.ErrCodeInvalidDocument, "empty request body")
	}
	return err
}

// decodeBody decodes a JSON request body. An empty body returns io.EOF so
// callers can treat it as "use defaults" where that makes sense.
func decodeBody(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	err := json.NewDecoder(body).Decode(v)
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode request body")
	}
	return nil
}
