package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vistaar/vistaar/internal/api"
	"github.com/vistaar/vistaar/internal/config"
	"github.com/vistaar/vistaar/internal/intake"
	"github.com/vistaar/vistaar/internal/label"
	"github.com/vistaar/vistaar/internal/logging"
	"github.com/vistaar/vistaar/internal/mail"
	"github.com/vistaar/vistaar/internal/store"
	"github.com/vistaar/vistaar/internal/uploads"
	"github.com/vistaar/vistaar/internal/util"
)

const shutdownTimeout = 10 * time.Second

// serveFlags override the matching environment settings when set.
type serveFlags struct {
	port      string
	uploadDir string
	staticDir string
}

func (f serveFlags) apply(cfg *config.Config) {
	if f.port != "" {
		cfg.Port = f.port
	}
	if f.uploadDir != "" {
		cfg.UploadDir = f.uploadDir
	}
	if f.staticDir != "" {
		cfg.StaticDir = f.staticDir
	}
}

func newServeCmd() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			flags.apply(cfg)
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&flags.port, "port", "", "listen port (default $PORT or 5000)")
	cmd.Flags().StringVar(&flags.uploadDir, "upload-dir", "", "uploads directory (default $UPLOAD_DIR)")
	cmd.Flags().StringVar(&flags.staticDir, "static-dir", "", "built frontend directory (default $STATIC_DIR)")
	return cmd
}

func openStore(cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		log.Info().Msg("using postgres store")
		return store.NewPostgresStore(cfg.DatabaseURL)
	}
	log.Info().Str("path", cfg.SQLitePath).Msg("using sqlite store")
	return store.NewSQLiteStore(cfg.SQLitePath)
}

func newNotifier(cfg mail.SMTPConfig) mail.Notifier {
	if !cfg.Enabled() {
		log.Warn().Msg("SMTP not configured, contact notifications disabled")
		return mail.Nop{}
	}
	n, err := mail.NewSMTPNotifier(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("SMTP client setup failed, contact notifications disabled")
		return mail.Nop{}
	}
	return n
}

func serve(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	closer := logging.Setup(logging.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		Console: cfg.Debug(),
	})
	defer closer.Close()

	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := util.EnsureDir(cfg.UploadDir); err != nil {
		return fmt.Errorf("prepare upload dir: %w", err)
	}
	st, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	files := uploads.New(cfg.UploadDir)
	labels := label.New(files)
	svc := intake.NewService(st, newNotifier(cfg.SMTP), files)
	defer svc.Wait()

	h := api.NewHandler(labels, svc, files, cfg.Debug())
	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: api.NewRouter(h, api.Options{
			UploadDir:      cfg.UploadDir,
			StaticDir:      cfg.StaticDir,
			MaxUploadBytes: cfg.MaxUploadBytes,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
