package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/term"

	"github.com/veldt-labs/workspacehub/internal/adapters/driving/oauth"
	"github.com/veldt-labs/workspacehub/internal/connectors/google"
	"github.com/veldt-labs/workspacehub/internal/core/domain"
	"github.com/veldt-labs/workspacehub/internal/logger"
)

// loginTimeout is how long the login flow waits for the browser callback.
const loginTimeout = 5 * time.Minute

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google account authentication",
	Long: `Authenticate a Google account and manage the stored tokens.

Login requires a credentials.json OAuth client file (Desktop app type)
downloaded from Google Cloud Console, placed in the config directory
or the working directory.

Examples:
  workspacehub auth login
  workspacehub auth status
  workspacehub auth revoke`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate a Google account via the browser",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored authentication state",
	RunE:  runAuthStatus,
}

var authRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Delete the stored tokens",
	RunE:  runAuthRevoke,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authRevokeCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if err := initStores(); err != nil {
		return err
	}
	defer closeStores()

	path, err := credentialsPath()
	if err != nil {
		return err
	}
	holder, err := google.NewClientConfigHolder(path)
	if err != nil {
		if errors.Is(err, domain.ErrClientConfigMissing) {
			return fmt.Errorf("%w: download an OAuth client file (Desktop app) from "+
				"Google Cloud Console and save it as %s", domain.ErrClientConfigMissing, path)
		}
		return err
	}

	ctx := cmd.Context()
	state := uuid.New().String()
	verifier := oauth.GenerateCodeVerifier()
	challenge := oauth.GenerateCodeChallenge(verifier)

	callback := oauth.NewCallbackServer(0, state)
	if err := callback.Start(); err != nil {
		return fmt.Errorf("starting callback server: %w", err)
	}
	defer callback.Stop() //nolint:errcheck

	cfg := *holder.Config()
	cfg.RedirectURL = callback.RedirectURI()

	authURL := cfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		cmd.Println("Opening your browser to sign in...")
		if err := oauth.OpenBrowser(authURL); err != nil {
			logger.Debug("opening browser: %v", err)
			cmd.Println("Could not open a browser. Visit this URL to sign in:")
			cmd.Println(authURL)
		}
	} else {
		cmd.Println("Visit this URL to sign in:")
		cmd.Println(authURL)
	}

	code, err := callback.WaitForCode(loginTimeout)
	if err != nil {
		return fmt.Errorf("waiting for authorisation: %w", err)
	}

	token, err := cfg.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return fmt.Errorf("exchanging authorisation code: %w", err)
	}

	// Resolve the account email so status can show who is signed in
	account := ""
	if userInfo, err := google.GetUserInfo(ctx, token.AccessToken); err == nil {
		account = userInfo.Email
	} else {
		logger.Warn("fetching user info: %v", err)
	}

	creds := domain.Credentials{
		ID:                domain.DefaultCredentialsID,
		AccountIdentifier: account,
		OAuth: &domain.OAuthToken{
			AccessToken:  token.AccessToken,
			RefreshToken: token.RefreshToken,
			TokenType:    token.TokenType,
			Expiry:       token.Expiry,
		},
	}
	if err := credentialsService.Save(ctx, creds); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}

	if account != "" {
		cmd.Println(styleSuccess.Render(fmt.Sprintf("Authenticated as %s", account)))
	} else {
		cmd.Println(styleSuccess.Render("Authenticated"))
	}
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if err := initStores(); err != nil {
		return err
	}
	defer closeStores()

	creds, err := credentialsService.Get(cmd.Context(), domain.DefaultCredentialsID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("Not authenticated. Run 'workspacehub auth login'.")
			return nil
		}
		return err
	}

	if !creds.IsAuthenticated() {
		cmd.Println("Not authenticated. Run 'workspacehub auth login'.")
		return nil
	}

	account := creds.AccountIdentifier
	if account == "" {
		account = "(unknown account)"
	}
	cmd.Println(styleSuccess.Render(fmt.Sprintf("Authenticated as %s", account)))

	if creds.OAuth.IsExpired() {
		if creds.HasRefreshToken() {
			cmd.Println("Access token expired; it will be refreshed on next use.")
		} else {
			cmd.Println(styleError.Render("Access token expired and no refresh token is stored. Run 'workspacehub auth login'."))
		}
	} else if !creds.OAuth.Expiry.IsZero() {
		cmd.Printf("Access token valid until %s\n", creds.OAuth.Expiry.Local().Format(time.RFC1123))
	}
	return nil
}

func runAuthRevoke(cmd *cobra.Command, _ []string) error {
	if err := initStores(); err != nil {
		return err
	}
	defer closeStores()

	err := credentialsService.Delete(cmd.Context(), domain.DefaultCredentialsID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Println("No stored credentials.")
			return nil
		}
		return err
	}

	if tokenProvider != nil {
		tokenProvider.InvalidateCache()
	}

	cmd.Println("Stored credentials deleted.")
	return nil
}
