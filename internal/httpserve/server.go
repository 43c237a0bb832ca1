// Package httpserve serves generated documents and a Swagger UI over HTTP.
package httpserve

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/erraggy/hubdoc"
	"github.com/erraggy/hubdoc/oas"
	"github.com/erraggy/hubdoc/oaserrors"
	"github.com/gorilla/schema"
	swaggerFiles "github.com/swaggo/files"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Route paths.
const (
	JSONPath = "/openapi.json"
	YAMLPath = "/openapi.yaml"
	DocsPath = "/docs/"
	IconPath = "/favicon.ico"
)

// favicon is the Swagger UI icon, reused for the document routes.
var favicon = sync.OnceValues(func() ([]byte, error) {
	return swaggerFiles.ReadFile("/favicon-32x32.png")
})

func serveFavicon(w http.ResponseWriter, r *http.Request) {
	data, err := favicon()
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}

// Generator produces the document with the given name. It is called once
// per request.
type Generator func(ctx context.Context, document string) (*oas.Document, error)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// documentQuery is the query string accepted by the document routes.
type documentQuery struct {
	Document string `schema:"document"`
}

// Server serves one document per request, generated on demand.
type Server struct {
	generate        Generator
	defaultDocument string
	logger          oas.Logger
	server          *http.Server
}

// NewServer creates a server listening on addr. Requests without a
// document query use defaultDocument.
func NewServer(addr, defaultDocument string, gen Generator, logger oas.Logger) *Server {
	if logger == nil {
		logger = oas.NopLogger{}
	}
	s := &Server{
		generate:        gen,
		defaultDocument: defaultDocument,
		logger:          logger,
	}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+JSONPath, s.document(oas.FormatJSON))
	mux.HandleFunc("GET "+YAMLPath, s.document(oas.FormatYAML))
	mux.HandleFunc("GET /docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath, http.StatusFound)
	})
	mux.HandleFunc("GET "+IconPath, serveFavicon)
	mux.Handle("GET "+DocsPath, httpSwagger.Handler(
		httpSwagger.URL(JSONPath),
		httpSwagger.DeepLinking(true),
	))
	return mux
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "addr", s.server.Addr)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) document(format oas.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q documentQuery
		if err := queryDecoder.Decode(&q, r.URL.Query()); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if q.Document == "" {
			q.Document = s.defaultDocument
		}

		doc, err := s.generate(r.Context(), q.Document)
		if err != nil {
			s.logger.Warn("generation failed", "document", q.Document, "error", err)
			writeError(w, statusFor(err), err)
			return
		}
		data, err := doc.Marshal(format)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", contentType(format))
		w.Header().Set("Server", hubdoc.UserAgent())
		_, _ = w.Write(data)
		s.logger.Debug("served document", "document", q.Document, "format", format, "bytes", len(data))
	}
}

func contentType(format oas.Format) string {
	if format == oas.FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, oaserrors.ErrConfig), errors.Is(err, oaserrors.ErrPrecondition):
		return http.StatusBadRequest
	case errors.Is(err, oaserrors.ErrDuplicatePath):
		return http.StatusConflict
	case errors.Is(err, oaserrors.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled):
		return 499 // Client Closed Request (Nginx standard)
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: err.Error()})
}
