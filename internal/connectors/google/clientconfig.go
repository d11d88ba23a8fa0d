package google

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/oauth2"
	goauth "golang.org/x/oauth2/google"

	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// CredentialsFileName is the OAuth client configuration file the operator
// downloads from Google Cloud Console.
const CredentialsFileName = "credentials.json"

// Scopes is the full scope set the hub requests during login.
var Scopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/chat.spaces.readonly",
	"https://www.googleapis.com/auth/chat.messages.readonly",
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/documents.readonly",
	"https://www.googleapis.com/auth/drive.readonly",
}

// LoadClientConfig reads an installed-app OAuth client configuration from
// path. A missing file maps to domain.ErrClientConfigMissing and a file that
// does not parse to domain.ErrClientConfigInvalid, so callers can report the
// setup problem precisely.
func LoadClientConfig(path string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrClientConfigMissing, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, err := goauth.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrClientConfigInvalid, err)
	}

	return cfg, nil
}

// ClientConfigHolder keeps the loaded OAuth client configuration and can
// watch the backing file for changes, reloading on modification. A change
// also notifies the registered listener so cached tokens can be dropped.
type ClientConfigHolder struct {
	mu       sync.RWMutex
	path     string
	cfg      *oauth2.Config
	onReload func()
	watcher  *fsnotify.Watcher
}

// NewClientConfigHolder loads the configuration at path.
func NewClientConfigHolder(path string) (*ClientConfigHolder, error) {
	cfg, err := LoadClientConfig(path)
	if err != nil {
		return nil, err
	}

	return &ClientConfigHolder{
		path: path,
		cfg:  cfg,
	}, nil
}

// Config returns the currently loaded configuration.
func (h *ClientConfigHolder) Config() *oauth2.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

// OnReload registers a callback invoked after a successful reload.
func (h *ClientConfigHolder) OnReload(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onReload = fn
}

// Watch starts watching the credentials file for changes. Reload failures
// keep the previous configuration; a replaced-then-recreated file (the
// common editor save pattern) is handled by watching the directory.
func (h *ClientConfigHolder) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	h.mu.Lock()
	h.watcher = watcher
	h.mu.Unlock()

	go h.watchLoop(watcher)
	return nil
}

// Close stops the file watcher.
func (h *ClientConfigHolder) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watcher != nil {
		return h.watcher.Close()
	}
	return nil
}

func (h *ClientConfigHolder) watchLoop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(h.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			h.reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("credentials watcher: %v", err)
		}
	}
}

func (h *ClientConfigHolder) reload() {
	cfg, err := LoadClientConfig(h.path)
	if err != nil {
		logger.Warn("reloading %s: %v", h.path, err)
		return
	}

	h.mu.Lock()
	h.cfg = cfg
	onReload := h.onReload
	h.mu.Unlock()

	logger.Info("reloaded OAuth client configuration from %s", h.path)
	if onReload != nil {
		onReload()
	}
}
