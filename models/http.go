package models

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	UserID      string `json:"user_id"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// CreateUserResponse is the body returned on successful registration.
type CreateUserResponse struct {
	OK   bool       `json:"ok"`
	User UserPublic `json:"user"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// LoginResponse carries the freshly issued bearer token. The token is
// opaque: clients must treat it as a case-sensitive string and present it
// back verbatim in the Authorization header.
type LoginResponse struct {
	OK     bool   `json:"ok"`
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// MeResponse is the body of GET /me for an authenticated caller.
type MeResponse struct {
	OK   bool       `json:"ok"`
	User UserPublic `json:"user"`
}

// ValidateResponse is the body of GET /validate. Collaborating services
// that only need identity confirmation read UserID; on a bad token OK is
// false and Message explains why, without distinguishing unknown from
// expired tokens.
type ValidateResponse struct {
	OK      bool   `json:"ok"`
	UserID  string `json:"user_id,omitempty"`
	Message string `json:"message,omitempty"`
}

// PingRequest is the body of POST /ping.
type PingRequest struct {
	Message string `json:"message"`
}

// PingResponse echoes the ping message back to the caller.
type PingResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// ServiceInfoResponse is the body of GET /, a small banner identifying the
// service.
type ServiceInfoResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}
