package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-login-keeper/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:5002"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, userID, password, displayName string) (models.UserPublic, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateUserRequest{UserID: userID, Password: password, DisplayName: displayName}).
		Post("/users")
	if err != nil {
		return models.UserPublic{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPublic{}, err
	}

	var body models.CreateUserResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.UserPublic{}, fmt.Errorf("decode create user response: %w", err)
	}

	return body.User, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, userID, password string) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{UserID: userID, Password: password}).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var body models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(body.Token)
	return body, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.UserPublic, error) {
	resp, err := h.authedRequest(ctx).Get("/me")
	if err != nil {
		return models.UserPublic{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPublic{}, err
	}

	var body models.MeResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.UserPublic{}, fmt.Errorf("decode me response: %w", err)
	}

	return body.User, nil
}

func (h *httpServerAdapter) Validate(ctx context.Context) (models.ValidateResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/validate")
	if err != nil {
		return models.ValidateResponse{}, fmt.Errorf("validate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ValidateResponse{}, err
	}

	var body models.ValidateResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.ValidateResponse{}, fmt.Errorf("decode validate response: %w", err)
	}

	return body, nil
}

func (h *httpServerAdapter) PublicProfile(ctx context.Context, userID string) (models.UserPublic, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/users/" + userID)
	if err != nil {
		return models.UserPublic{}, fmt.Errorf("public profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserPublic{}, err
	}

	var body models.UserPublic
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.UserPublic{}, fmt.Errorf("decode public profile response: %w", err)
	}

	return body, nil
}

func (h *httpServerAdapter) Ping(ctx context.Context, message string) (models.PingResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PingRequest{Message: message}).
		Post("/ping")
	if err != nil {
		return models.PingResponse{}, fmt.Errorf("ping request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PingResponse{}, err
	}

	var body models.PingResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.PingResponse{}, fmt.Errorf("decode ping response: %w", err)
	}

	return body, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
