// Package cli implements the workspacehub command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/veldt-labs/workspacehub/internal/adapters/driven/auth"
	configfile "github.com/veldt-labs/workspacehub/internal/adapters/driven/config/file"
	"github.com/veldt-labs/workspacehub/internal/adapters/driven/storage/sqlite"
	"github.com/veldt-labs/workspacehub/internal/connectors/google"
	"github.com/veldt-labs/workspacehub/internal/connectors/google/calendar"
	"github.com/veldt-labs/workspacehub/internal/connectors/google/chat"
	"github.com/veldt-labs/workspacehub/internal/connectors/google/docs"
	"github.com/veldt-labs/workspacehub/internal/connectors/google/gmail"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/core/ports/driving"
	"github.com/veldt-labs/workspacehub/internal/core/services"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
)

// Shared services, wired lazily by the commands that need them.
var (
	store              *sqlite.Store
	configStore        *configfile.ConfigStore
	configHolder       *google.ClientConfigHolder
	tokenProvider      *auth.OAuthProvider
	credentialsService driving.CredentialsService
)

var rootCmd = &cobra.Command{
	Use:   "workspacehub",
	Short: "Local gateway to Google Workspace data",
	Long: `WorkspaceHub relays extraction requests to Google services.

It authenticates one Google account via OAuth and exposes read-only
HTTP endpoints for Gmail, Google Chat, Google Calendar, and Google Docs
activity. Authentication requires a credentials.json OAuth client file
from Google Cloud Console in the config directory.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.workspacehub)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// configDirPath resolves the config directory, creating it if needed.
func configDirPath() (string, error) {
	dir := flagConfigDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".workspacehub")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return dir, nil
}

// credentialsPath locates the OAuth client configuration file. The config
// directory is preferred; the working directory is a fallback for setups
// that keep credentials.json next to the binary.
func credentialsPath() (string, error) {
	dir, err := configDirPath()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, google.CredentialsFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if _, err := os.Stat(google.CredentialsFileName); err == nil {
		return google.CredentialsFileName, nil
	}

	// Report the config-dir location in the error
	return path, nil
}

// initStores opens the SQLite store and config store. Idempotent.
func initStores() error {
	if store != nil {
		return nil
	}

	dir, err := configDirPath()
	if err != nil {
		return err
	}

	configStore, err = configfile.NewConfigStore(dir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}

	store, err = sqlite.NewStore(filepath.Join(dir, "data"))
	if err != nil {
		return fmt.Errorf("opening data store: %w", err)
	}

	credentialsService = services.NewCredentialsService(store.CredentialsStore())
	return nil
}

// nilConfigSource is used when credentials.json is absent so the server can
// still start; token refresh then fails with a config-missing error.
type nilConfigSource struct{}

func (nilConfigSource) Config() *oauth2.Config { return nil }

// initTokenProvider wires the OAuth token provider. When credentials.json is
// missing the provider still works for unexpired stored tokens but cannot
// refresh. The returned holder is nil in that case.
func initTokenProvider() error {
	if tokenProvider != nil {
		return nil
	}
	if err := initStores(); err != nil {
		return err
	}

	path, err := credentialsPath()
	if err != nil {
		return err
	}

	holder, err := google.NewClientConfigHolder(path)
	if err != nil {
		logger.Warn("OAuth client configuration unavailable: %v", err)
		tokenProvider = auth.NewOAuthProvider(domain.DefaultCredentialsID, store.CredentialsStore(), nilConfigSource{})
		return nil
	}

	configHolder = holder
	tokenProvider = auth.NewOAuthProvider(domain.DefaultCredentialsID, store.CredentialsStore(), holder)
	holder.OnReload(tokenProvider.InvalidateCache)
	return nil
}

// buildHubService constructs the hub service with all four extractors.
func buildHubService(ctx context.Context) (driving.HubService, error) {
	if err := initTokenProvider(); err != nil {
		return nil, err
	}

	ts := google.NewTokenSource(ctx, tokenProvider)
	maxResults := int64(configStore.GetInt("extraction.max_results"))

	gmailSvc, err := google.NewGmailService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("creating gmail service: %w", err)
	}
	chatSvc, err := google.NewChatService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("creating chat service: %w", err)
	}
	calendarSvc, err := google.NewCalendarService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	driveSvc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}

	return services.NewHubService(services.HubPorts{
		Gmail:    gmail.NewExtractor(gmailSvc, rateLimiterFor(domain.ServiceGmail), maxResults),
		Chat:     chat.NewExtractor(chatSvc, rateLimiterFor(domain.ServiceChat), maxResults),
		Calendar: calendar.NewExtractor(calendarSvc, rateLimiterFor(domain.ServiceCalendar), maxResults),
		Docs:     docs.NewExtractor(driveSvc, rateLimiterFor(domain.ServiceDocs), maxResults),
		Runs:     store.RunStore(),
	}), nil
}

// rateLimiterFor builds the rate limiter for a service, honouring a
// ratelimit.<service>_rps override in the config file.
func rateLimiterFor(service domain.Service) *google.RateLimiter {
	if rps := configStore.GetInt(fmt.Sprintf("ratelimit.%s_rps", service)); rps > 0 {
		return google.NewRateLimiterWithConfig(google.RateLimitConfig{
			RequestsPerSecond: float64(rps),
			BurstSize:         rps,
		})
	}
	return google.NewRateLimiter(service)
}

// closeStores releases store resources on exit.
func closeStores() {
	if configHolder != nil {
		configHolder.Close() //nolint:errcheck
	}
	if store != nil {
		store.Close() //nolint:errcheck
	}
}
