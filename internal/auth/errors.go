package auth

import "errors"

var (
	// ErrMissingToken indicates the request carried no usable bearer credential.
	ErrMissingToken = errors.New("authorization token missing")
	// ErrInvalidToken indicates the token failed structural decoding or
	// signature verification.
	ErrInvalidToken = errors.New("token invalid")
	// ErrExpiredToken indicates a structurally valid token past its expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrWrongTokenType indicates a valid, unexpired token presented outside
	// its namespace (a session token where a playback token is required).
	ErrWrongTokenType = errors.New("wrong token type")
	// ErrTokenVideoMismatch indicates a playback token bound to a different video.
	ErrTokenVideoMismatch = errors.New("token issued for a different video")
)
