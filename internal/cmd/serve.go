package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/couvx/chatbot/api"
	"github.com/couvx/chatbot/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Run the HTTP API",
	GroupID: groupShell,
	Long: `Run the HTTP API: collection search, suggestions, the chat endpoints,
analytics and Prometheus metrics.

Examples:
  klasifikasi serve                    # listen on the configured port
  klasifikasi serve --port 9000        # override the port
  klasifikasi serve --env prod         # JSON logs`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.HTTP.Port = servePort
	}

	a, err := newApp(cfg, nil)
	if err != nil {
		return err
	}
	defer a.close()

	conversation, err := a.newConversation("chat")
	if err != nil {
		return err
	}

	if cfg.Logging.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := api.NewRouter(api.NewAPI(api.Deps{
		Records:      a.records,
		Searcher:     a.searcher,
		Suggester:    a.suggester,
		Analytics:    a.analytics,
		Lookup:       a.lookup,
		Conversation: conversation,
		Logger:       a.logger,
	}), cfg.HTTP)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// load both collections before accepting traffic
	counts := a.records.Counts()
	a.logger.Info("records loaded",
		zap.Int("kode", counts[model.CollectionCodes]),
		zap.Int("jenis", counts[model.CollectionDocumentTypes]))

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting server", zap.Int("port", cfg.HTTP.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
