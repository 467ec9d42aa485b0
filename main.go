package main

import (
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"LCA/internal/auth"
	"LCA/internal/calc/batch"
	"LCA/internal/calc/impact"
	"LCA/internal/calc/importer"
	"LCA/internal/calc/report"
	"LCA/internal/config"
	"LCA/internal/logging"
	"LCA/internal/metrics"
	"LCA/internal/web"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

// CORS opens the API to browser clients on other origins. Downloads expose
// Content-Disposition so the file name survives a fetch.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Access-Control-Expose-Headers", "Content-Disposition")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleList registers every route of the service on mux.
func HandleList(mux *mux.Router, cfg *config.Config, logger zerolog.Logger, m *metrics.Metrics, reportKey []byte) error {
	calcH := &impact.Handler{MaxAmount: cfg.Calc.MaxAmount, Log: logger, Metrics: m}
	signer := &auth.ReportSigner{Key: reportKey, TTL: cfg.ReportTTL()}
	reportH := &report.Handler{Calc: calcH, Links: signer, Log: logger, Metrics: m}
	batchH := &batch.Handler{Impact: calcH}
	importH := &importer.Handler{Calc: calcH, Log: logger}

	webH, err := web.New(calcH, signer, logger)
	if err != nil {
		return err
	}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.Server.RatePerSec), cfg.Server.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/catalog", calcH.Catalog).Methods("GET")
	api.HandleFunc("/calc", calcH.Calc).Methods("POST")
	api.HandleFunc("/batch/calc", batchH.Calc).Methods("POST")
	api.HandleFunc("/import/xlsx", importH.Upload).Methods("POST")
	api.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/report/{token}", reportH.Download).Methods("GET")

	admin := auth.AdminMiddleware(cfg.Admin.User, cfg.Admin.PasswordHash)
	mux.Handle("/metrics", admin(m.Handler())).Methods("GET")
	mux.HandleFunc("/health", metrics.Health).Methods("GET")

	mux.HandleFunc("/", webH.Form).Methods("GET")
	mux.Handle("/", limiter.LimitMiddleware(http.HandlerFunc(webH.Submit))).Methods("POST")

	mux.Use(logging.RequestLogger(logger))
	return nil
}

// reportKey returns the configured signing key or a random one. Links signed
// with a random key stop working after a restart.
func reportKey(cfg *config.Config, logger zerolog.Logger) ([]byte, error) {
	if cfg.Report.Key != "" {
		return []byte(cfg.Report.Key), nil
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate report key: %w", err)
	}
	logger.Warn().Msg("LCA_REPORT_KEY not set, using a random key; download links will not survive a restart")
	return key, nil
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	key, err := reportKey(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("report key")
	}

	mux := mux.NewRouter()
	if err := HandleList(mux, cfg, logger, metrics.New(), key); err != nil {
		logger.Fatal().Err(err).Msg("register routes")
	}
	handler := CORS(mux)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	logger.Info().Str("addr", cfg.Server.Addr).Bool("tls", cfg.TLSEnabled()).Msg("starting server")
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown")
	}
	logger.Info().Msg("server stopped")

	wg.Wait()
}
