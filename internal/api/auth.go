// internal/api/auth.go
package api

import (
	"context"
	"net/http"
)

// AuthService wraps the backend authentication endpoints.
type AuthService struct {
	client *Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// TokenPair is the backend's login/refresh response.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// CurrentUser is the privilege payload of the current-user endpoint. The
// endpoint may legitimately not exist on a given deployment.
type CurrentUser struct {
	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	payload := map[string]string{"username": username, "password": password}

	var pair TokenPair
	if err := s.client.doJSON(ctx, http.MethodPost, "/auth/login/", payload, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *AuthService) Register(ctx context.Context, username, password, phone string) error {
	payload := map[string]string{"username": username, "password": password, "phone": phone}
	return s.client.doJSON(ctx, http.MethodPost, "/auth/register/", payload, nil)
}

func (s *AuthService) Refresh(ctx context.Context, refresh string) (*TokenPair, error) {
	payload := map[string]string{"refresh": refresh}

	var pair TokenPair
	if err := s.client.doJSON(ctx, http.MethodPost, "/auth/refresh/", payload, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context) (*CurrentUser, error) {
	var user CurrentUser
	if err := s.client.doJSON(ctx, http.MethodGet, "/auth/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
