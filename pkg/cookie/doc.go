// Package cookie manages plain, signed and encrypted HTTP cookies.
//
// A Manager is created from one or more secrets (at least 32 characters
// each). Every secret is expanded with HKDF-SHA256 into an HMAC key and an
// AES-256-GCM key, so signing and encryption never share key material.
// The first secret writes; all of them read, which allows rotation:
//
//	man, err := cookie.New([]string{newSecret, oldSecret})
//
//	_ = man.SetEncrypted(w, "sid", token, cookie.WithMaxAge(3600))
//	token, err := man.GetEncrypted(r, "sid")
//
// Errors are sentinel values (ErrCookieNotFound, ErrInvalidSignature,
// ErrDecryptionFailed, ...) for use with errors.Is.
package cookie
