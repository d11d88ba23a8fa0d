package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/veldt-labs/workspacehub/internal/adapters/driving/httpapi"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server exposing the extraction endpoints.

The server starts even without stored credentials; unauthenticated
requests to the extraction endpoints return 502 until 'workspacehub
auth login' has been run.

Examples:
  workspacehub serve
  workspacehub serve --port 9000`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "listen host (default from config, else all interfaces)")
	serveCmd.Flags().IntP("port", "p", 0, "listen port (default from config, else 8000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	host, err := cmd.Flags().GetString("host")
	if err != nil {
		return fmt.Errorf("getting host flag: %w", err)
	}
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub, err := buildHubService(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	if host == "" {
		host = configStore.GetString("server.host")
	}
	if port == 0 {
		port = configStore.GetInt("server.port")
	}

	// Pick up credentials.json changes without a restart
	if configHolder != nil {
		if err := configHolder.Watch(); err != nil {
			logger.Warn("watching credentials file: %v", err)
		}
	}

	server := httpapi.NewServer(hub, host, port)
	cmd.Printf("Listening on %s\n", server.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
