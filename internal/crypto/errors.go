package crypto

import "errors"

// ErrPasswordTooShort is returned by [PasswordHasher.Hash] when the supplied
// password is shorter than the configured policy minimum. Matched with
// [errors.Is] by callers that need to map it to an input-validation outcome.
var ErrPasswordTooShort = errors.New("password is too short")
