package googleoauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"inventory-hub/config"
	"inventory-hub/internal/user"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

type provider struct {
	oauth *oauth2.Config
}

// New creates a Google OAuth sign-in provider, or nil when unconfigured.
func New(cfg config.GoogleOAuthConfig) user.OAuthProvider {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil
	}
	return &provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthURL returns the Google consent page URL for the given state.
func (p *provider) AuthURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for the user's Google identity.
func (p *provider) Exchange(ctx context.Context, code string) (user.OAuthUser, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return user.OAuthUser{}, fmt.Errorf("exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoEndpoint, nil)
	if err != nil {
		return user.OAuthUser{}, err
	}
	resp, err := p.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return user.OAuthUser{}, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return user.OAuthUser{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return user.OAuthUser{}, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" {
		return user.OAuthUser{}, fmt.Errorf("userinfo missing email")
	}

	return user.OAuthUser{Email: info.Email, Name: info.Name, Image: info.Picture}, nil
}
