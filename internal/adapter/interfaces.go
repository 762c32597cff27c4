// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the login service.
//
// The primary abstraction is [ServerAdapter], which decouples client code
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-login-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the login
// service. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Login calls it automatically on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// CreateUser registers a new account and returns its public view.
	CreateUser(ctx context.Context, userID, password, displayName string) (models.UserPublic, error)

	// Login authenticates with the server. On success it stores the issued
	// token via SetToken and returns the full login response.
	Login(ctx context.Context, userID, password string) (models.LoginResponse, error)

	// Me fetches the profile of the user owning the stored token.
	Me(ctx context.Context) (models.UserPublic, error)

	// Validate asks the server whether the stored token is still good. A
	// rejected token is not an error here: the server's diagnostic contract
	// reports it as OK=false in the response body.
	Validate(ctx context.Context) (models.ValidateResponse, error)

	// PublicProfile fetches the public view of any registered user.
	PublicProfile(ctx context.Context, userID string) (models.UserPublic, error)

	// Ping round-trips a message through the server.
	Ping(ctx context.Context, message string) (models.PingResponse, error)
}
