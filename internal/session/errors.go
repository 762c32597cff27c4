package session

import "errors"

// ErrTokenIsExpiredOrInvalid is returned by [Manager.Validate] for every
// rejected token. Unknown, expired, and never-issued tokens are reported
// identically on purpose — the caller learns nothing about why a token is
// bad.
var ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
