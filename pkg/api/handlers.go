package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/canvas2svg/pkg/buildinfo"
	"github.com/matzehuels/canvas2svg/pkg/canvas"
	"github.com/matzehuels/canvas2svg/pkg/errors"
	"github.com/matzehuels/canvas2svg/pkg/pipeline"
	"github.com/matzehuels/canvas2svg/pkg/render/scene"
)

// Response headers set by the render endpoint.
const (
	CacheHeader   = "X-Cache"
	SkippedHeader = "X-Skipped-Nodes"
)

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *server) handlePalette(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.Palette())
}

func (s *server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	if len(opts.Formats) != 1 {
		s.fail(w, r, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidFormat, "exactly one format per request"))
		return
	}

	var doc canvas.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		var tooBig *http.MaxBytesError
		if stderrors.As(err, &tooBig) {
			s.fail(w, r, http.StatusRequestEntityTooLarge,
				errors.Wrap(errors.ErrCodeInvalidInput, err, "request body exceeds %d bytes", tooBig.Limit))
			return
		}
		s.fail(w, r, http.StatusBadRequest, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode canvas"))
		return
	}
	if err := doc.Validate(); err != nil {
		s.fail(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	result, err := s.runner.Render(r.Context(), doc, opts)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.IsDocumentError(err) {
			status = http.StatusUnprocessableEntity
		}
		s.fail(w, r, status, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	if result.CacheHit {
		w.Header().Set(CacheHeader, "hit")
	} else {
		w.Header().Set(CacheHeader, "miss")
	}
	if len(result.Skipped) > 0 {
		w.Header().Set(SkippedHeader, strings.Join(result.Skipped, ","))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// renderOptions merges query parameters over the server defaults.
func (s *server) renderOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	q := r.URL.Query()

	if v := q.Get("format"); v != "" {
		opts.Formats = pipeline.ParseFormats(v)
	} else {
		opts.Formats = []string{pipeline.FormatSVG}
	}
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("padding"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "padding %q", v)
		}
		opts.Padding = p
	}
	if v := q.Get("scale"); v != "" {
		sc, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "scale %q", v)
		}
		opts.Scale = sc
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Debug("render failed", "id", RequestIDFromContext(r.Context()), "status", status, "err", err)
	code := string(errors.GetCode(err))
	if code == "" {
		code = string(errors.ErrCodeInternal)
	}
	writeError(w, status, code, errors.UserMessage(err))
}

type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorBody{Code: code, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
