// Package server assembles the HTTP router: Connect services, metrics,
// health check and the static web client.
package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/splitzee/splitzee/internal/metrics"
	"github.com/splitzee/splitzee/internal/middleware"
	"github.com/splitzee/splitzee/pkg/api"
)

// Services are the RPC implementations to mount.
type Services struct {
	Split    api.SplitServiceHandler
	Currency api.CurrencyServiceHandler
	Expense  api.ExpenseServiceHandler
	Auth     api.AuthServiceHandler
}

type Options struct {
	// Tokens verifies bearer tokens for ExpenseService and AuthService.
	Tokens middleware.TokenVerifier

	// Metrics and Gatherer back the /metrics endpoint. Both may be nil.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	// StaticDir is the built web client. Empty or missing disables static serving.
	StaticDir string

	// CORSOrigin is the allowed browser origin ("*" for any).
	CORSOrigin string

	Logger *slog.Logger
}

// NewRouter returns the HTTP handler serving every endpoint.
func NewRouter(svc Services, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(opts.Logger))
	r.Use(cors(opts.CORSOrigin))

	// Metrics count every call, auth runs before logging so log lines carry the user.
	observe := []connect.Interceptor{middleware.MetricsInterceptor(opts.Metrics)}
	logging := middleware.LoggingInterceptor(opts.Logger)

	public := connect.WithInterceptors(append(observe, logging)...)
	required := connect.WithInterceptors(append(observe, middleware.RequireAuth(opts.Tokens), logging)...)
	optional := connect.WithInterceptors(append(observe, middleware.OptionalAuth(opts.Tokens), logging)...)

	mount := func(path string, h http.Handler) {
		r.Handle(path+"*", h)
	}
	mount(api.NewSplitServiceHandler(svc.Split, public))
	mount(api.NewCurrencyServiceHandler(svc.Currency, public))
	mount(api.NewExpenseServiceHandler(svc.Expense, required))
	mount(api.NewAuthServiceHandler(svc.Auth, optional))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	if static := staticHandler(opts.StaticDir, opts.Logger); static != nil {
		r.Handle("/*", static)
	}

	return r
}

// New wraps the router with h2c so Connect clients can use HTTP/2 without TLS.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// staticHandler serves files from dir. Unknown paths get index.html so
// client-side routes load the app.
func staticHandler(dir string, logger *slog.Logger) http.Handler {
	if dir == "" {
		return nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger.Warn("Failed to resolve static path, static files disabled", "path", dir, "error", err)
		return nil
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		logger.Warn("Static directory not found, static files disabled", "path", abs)
		return nil
	}
	logger.Info("Serving static files", "path", abs)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unknown RPC paths must not fall back to the web client.
		if strings.HasPrefix(r.URL.Path, "/splitzee.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}
		filePath := filepath.Join(abs, filepath.Clean("/"+urlPath))

		if info, err := os.Stat(filePath); err != nil || info.IsDir() {
			http.ServeFile(w, r, filepath.Join(abs, "index.html"))
			return
		}
		http.ServeFile(w, r, filePath)
	})
}

// requestLogger logs each HTTP request after it completes.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"request_id", chimiddleware.GetReqID(r.Context()),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// cors adds CORS headers for browser access.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
			w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
