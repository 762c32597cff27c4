package service

import "errors"

// ErrTokenCreationFailed is returned by Login when credentials were correct
// but minting the session token failed. The only realistic cause is an
// unavailable system CSPRNG, so callers should treat it as an internal
// error, not an authentication failure.
var ErrTokenCreationFailed = errors.New("token creation failed")
