package http_server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"toolapps/convert"
	"toolapps/decode"
	"toolapps/encode"
	"toolapps/pipeline"
	"toolapps/toolconfig"
)

const (
	DefaultAddr     = ":6688"
	maxBodySize     = 1 << 20
	shutdownTimeout = time.Second * 5
)

// stage params that may be passed on the query string of /convert
var convertParams = []string{"key", "seed", "level", "max_size", "algorithm", "from", "to", "count", "type", "indent"}

type Server struct {
	Addr  string
	Store *toolconfig.Store
}

func New(addr string, store *toolconfig.Store) *Server {
	if addr == "" {
		addr = DefaultAddr
	}
	return &Server{Addr: addr, Store: store}
}

type digestResponse struct {
	Raw    string `json:"raw"`
	Digest string `json:"digest"`
}

type convertResponse struct {
	Pipeline string `json:"pipeline,omitempty"`
	Raw      string `json:"raw"`
	Result   string `json:"result"`
	Cached   bool   `json:"cached,omitempty"`
}

type schemesResponse struct {
	Converters []string `json:"converters"`
	Decoders   []string `json:"decoders"`
	Encoders   []string `json:"encoders"`
	Digests    []string `json:"digests"`
	Pipelines  []string `json:"pipelines"`
}

func (s *Server) HandleRequest(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-Id")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-Id", requestID)

	logr := logrus.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      r.Method,
		"path":        r.URL.Path,
		"remote_addr": r.RemoteAddr,
	})
	startedAt := time.Now()
	defer func() {
		logr.WithField("duration", time.Since(startedAt).Round(time.Millisecond)).Info("Request finished")
	}()

	path := r.URL.Path
	switch {
	case path == "/digest":
		s.handleDigest(w, r, logr)
	case path == "/convert":
		s.handleConvert(w, r, logr)
	case path == "/schemes":
		s.handleSchemes(w, r)
	case path == "/pipelines" || path == "/pipelines/":
		s.writeJSON(w, r, logr, http.StatusOK, s.pipelineNames())
	case strings.HasPrefix(path, "/pipelines/"):
		s.handlePipeline(w, r, logr, strings.TrimPrefix(path, "/pipelines/"))
	case path == "/reload_config":
		s.handleReload(w, r, logr)
	default:
		logr.Warn("Not found")
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request, logr *logrus.Entry) {
	target, ok := readTarget(w, r, logr)
	if !ok {
		return
	}
	algorithm := r.URL.Query().Get("algorithm")
	digest, err := pipeline.Digest(target, algorithm)
	if err != nil {
		s.writeError(w, logr, err)
		return
	}
	s.writeJSON(w, r, logr, http.StatusOK, digestResponse{Raw: target, Digest: digest})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request, logr *logrus.Entry) {
	target, ok := readTarget(w, r, logr)
	if !ok {
		return
	}
	query := r.URL.Query()
	params := convert.Params{}
	for _, name := range convertParams {
		if query.Has(name) {
			params[name] = query.Get(name)
		}
	}
	stages := pipeline.ParseStages(query.Get("convert"))
	for i := range stages {
		stages[i].Params = params
	}

	p, err := pipeline.Build("", pipeline.Definition{
		Decode:  query.Get("decode"),
		Convert: stages,
		Encode:  query.Get("encode"),
	})
	if err != nil {
		s.writeError(w, logr, err)
		return
	}
	result, err := p.Run(target)
	if err != nil {
		s.writeError(w, logr, err)
		return
	}
	logr.WithFields(p.LogrusFields()).Debug("Converted")
	s.writeJSON(w, r, logr, http.StatusOK, convertResponse{Raw: target, Result: result})
}

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request, logr *logrus.Entry, name string) {
	if s.Store == nil {
		s.writeError(w, logr, pipeline.ErrUnknownPipeline)
		return
	}
	p, ok := s.Store.Get(name)
	if !ok {
		logr.WithField("pipeline", name).Warn("Pipeline not found")
		s.writeError(w, logr, pipeline.ErrUnknownPipeline)
		return
	}
	target, ok := readTarget(w, r, logr)
	if !ok {
		return
	}
	result, cached, err := p.Run(target)
	if err != nil {
		s.writeError(w, logr.WithFields(p.LogrusFields()), err)
		return
	}
	s.writeJSON(w, r, logr, http.StatusOK, convertResponse{Pipeline: name, Raw: target, Result: result, Cached: cached})
}

func (s *Server) handleSchemes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, logrus.NewEntry(logrus.StandardLogger()), http.StatusOK, schemesResponse{
		Converters: convert.Names(),
		Decoders:   decode.Names(),
		Encoders:   encode.Names(),
		Digests:    convert.DigestAlgorithms(),
		Pipelines:  s.pipelineNames(),
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request, logr *logrus.Entry) {
	if s.Store == nil {
		http.Error(w, "No config loaded", http.StatusNotFound)
		return
	}
	if err := s.Store.Load(); err != nil {
		logr.WithError(err).Error("Error reloading config")
		http.Error(w, "Error reloading config", http.StatusInternalServerError)
		return
	}
	logr.Info("Config reloaded")
	w.WriteHeader(http.StatusOK)
}

func (s *Server) pipelineNames() []string {
	if s.Store == nil {
		return []string{}
	}
	return s.Store.Names()
}

// readTarget takes the target query parameter, or the request body when the
// parameter is absent.
func readTarget(w http.ResponseWriter, r *http.Request, logr *logrus.Entry) (string, bool) {
	query := r.URL.Query()
	if query.Has("target") || r.Body == nil || r.Method == http.MethodGet {
		return query.Get("target"), true
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		logr.WithError(err).Warn("Error reading body")
		http.Error(w, "Error reading body", http.StatusRequestEntityTooLarge)
		return "", false
	}
	return string(body), true
}

func errorStatus(err error) int {
	var (
		de *decode.DecodeError
		ce *convert.ConversionError
	)
	switch {
	case errors.Is(err, pipeline.ErrUnknownPipeline):
		return http.StatusNotFound
	case errors.As(err, &de), errors.As(err, &ce),
		errors.Is(err, decode.ErrUnknownScheme), errors.Is(err, encode.ErrUnknownScheme):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, logr *logrus.Entry, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		logr.WithError(err).Error("Error handling request")
	} else {
		logr.WithError(err).Warn("Rejected request")
	}
	http.Error(w, err.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, logr *logrus.Entry, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logr.WithError(err).Error("Error encoding response")
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
	body, retEncoding, err := convert.CompressWithSomething(body, r.Header.Get("Accept-Encoding"))
	if err != nil {
		logr.WithError(err).Error("Error encoding body")
		http.Error(w, "Error encoding body", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")
	if retEncoding != "" {
		w.Header().Set("Content-Encoding", retEncoding)
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(s.HandleRequest)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logrus.WithField("addr", s.Addr).Info("Starting server")
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logrus.Info("Shutting down server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
