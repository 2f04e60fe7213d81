package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/rozgar/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

type GoogleProfile struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
}

type GoogleOAuthService struct {
	cfg  *oauth2.Config
	http *resty.Client
}

func NewGoogleOAuthService(cfg *config.AuthConfig) *GoogleOAuthService {
	return &GoogleOAuthService{
		cfg: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		http: resty.New(),
	}
}

func (s *GoogleOAuthService) AuthURL(state string) string {
	return s.cfg.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for a token and loads the Google profile.
func (s *GoogleOAuthService) Exchange(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := s.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange: %w", err)
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("google userinfo: %w", err)
	}
	if resp.IsError() {
		return nil, &StatusError{Code: resp.StatusCode(), Body: truncate(resp.String(), 300)}
	}

	body := resp.String()
	profile := &GoogleProfile{
		ID:        gjson.Get(body, "sub").String(),
		Email:     gjson.Get(body, "email").String(),
		Name:      gjson.Get(body, "name").String(),
		AvatarURL: gjson.Get(body, "picture").String(),
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, fmt.Errorf("google profile missing id or email")
	}
	return profile, nil
}
