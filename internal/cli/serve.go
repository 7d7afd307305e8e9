package cli

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/topoviz/topoviz/pkg/cache"
	"github.com/topoviz/topoviz/pkg/errors"
	"github.com/topoviz/topoviz/pkg/pipeline"
	"github.com/topoviz/topoviz/pkg/render"
	"github.com/topoviz/topoviz/pkg/topology"
)

const (
	defaultAddr     = ":8080"
	artifactTTL     = 24 * time.Hour // rendered diagrams never change, but cap entries anyway
	shutdownTimeout = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	cacheDir  string // artifact cache directory ("" = OS cache dir)
	noCache   bool   // disable the artifact cache
	styleFile string // optional TOML style file
}

// newServeCmd creates the serve command: a small HTTP server that renders
// topology diagrams on demand.
//
// Routes:
//
//	GET /healthz                       liveness probe
//	GET /topologies                    list available topologies
//	GET /topologies/{variant}.{ext}    diagram (png, svg, dot) or export (json)
//	GET /topologies/{variant}/routes   per-node shortest-path routing tables
func newServeCmd() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve topology diagrams over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default: OS cache dir)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVarP(&opts.styleFile, "style", "s", "", "TOML style file overriding the default look")

	return cmd
}

// buildCache selects the artifact cache implementation from the flags.
func buildCache(opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	dir := opts.cacheDir
	if dir == "" {
		base, err := userCacheDir()
		if err != nil {
			return nil, err
		}
		dir = base
	}
	return cache.NewFileCache(dir)
}

// userCacheDir returns the per-user artifact cache directory.
func userCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "topoviz"), nil
}

// runServe starts the HTTP server and blocks until the context is canceled
// or the listener fails.
func runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	style, err := loadStyle(opts.styleFile)
	if err != nil {
		return err
	}
	store, err := buildCache(opts)
	if err != nil {
		return err
	}
	defer store.Close()

	s := &diagramServer{
		runner: pipeline.NewRunner(logger),
		store:  store,
		style:  style,
		logger: logger,
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	fmt.Fprintln(cmd.OutOrStdout(), styleTitle.Render("topoviz")+" "+styleDim.Render("listening on "+opts.addr))
	logger.Info("server starting", "addr", opts.addr)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// diagramServer renders diagrams for HTTP requests, consulting the
// artifact cache first.
type diagramServer struct {
	runner *pipeline.Runner
	store  cache.Cache
	style  render.Style
	logger *log.Logger
}

// routes builds the chi router.
func (s *diagramServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/topologies", s.handleList)
	r.Get("/topologies/{variant}.{ext}", s.handleDiagram)
	r.Get("/topologies/{variant}/routes", s.handleRoutes)

	return r
}

// logRequests logs each request with its chi request ID at debug level.
func (s *diagramServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start).Round(time.Millisecond))
	})
}

func (s *diagramServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// topologyInfo is the list entry returned by GET /topologies.
type topologyInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Nodes int    `json:"nodes"`
	Edges int    `json:"edges"`
	URL   string `json:"url"`
}

func (s *diagramServer) handleList(w http.ResponseWriter, r *http.Request) {
	list := make([]topologyInfo, 0, len(topology.Variants()))
	for _, v := range topology.Variants() {
		g, err := topology.Build(v)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		list = append(list, topologyInfo{
			Name:  string(v),
			Title: v.Title(),
			Nodes: g.NodeCount(),
			Edges: g.EdgeCount(),
			URL:   fmt.Sprintf("/topologies/%s.png", v),
		})
	}
	s.writeJSON(w, http.StatusOK, list)
}

// contentTypes maps output extensions to response content types.
var contentTypes = map[string]string{
	pipeline.FormatPNG: "image/png",
	pipeline.FormatSVG: "image/svg+xml",
	pipeline.FormatDOT: "text/vnd.graphviz",
	"json":             "application/json",
}

func (s *diagramServer) handleDiagram(w http.ResponseWriter, r *http.Request) {
	v, err := topology.Parse(chi.URLParam(r, "variant"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	ext := chi.URLParam(r, "ext")
	if ext == "json" {
		doc, err := s.runner.Export(r.Context(), v)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		s.writeJSON(w, http.StatusOK, doc)
		return
	}
	if err := pipeline.ValidateFormat(ext); err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	key := cache.ArtifactKey(string(v), ext, s.style)
	if art, ok, err := s.store.Get(r.Context(), key); err == nil && ok {
		s.logger.Debug("cache hit", "variant", v, "format", ext)
		s.writeArtifact(w, art.ContentType, art.Data)
		return
	}

	res, err := s.runner.Render(r.Context(), pipeline.Options{Variant: v, Format: ext, Style: s.style})
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	art := cache.Artifact{
		Variant:     string(v),
		Format:      ext,
		ContentType: contentTypes[ext],
		Data:        res.Data,
	}
	if err := s.store.Set(r.Context(), key, art, artifactTTL); err != nil {
		// A failed cache write only costs the next request a re-render.
		s.logger.Warn("cache write failed", "err", err)
	}
	s.writeArtifact(w, art.ContentType, art.Data)
}

func (s *diagramServer) handleRoutes(w http.ResponseWriter, r *http.Request) {
	v, err := topology.Parse(chi.URLParam(r, "variant"))
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	tables, err := s.runner.Routes(r.Context(), v)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tables)
}

func (s *diagramServer) writeArtifact(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *diagramServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *diagramServer) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}
