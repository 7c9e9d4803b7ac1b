package utils

import (
	"time"
)

// Token time constants
const (
	// AccessTokenTTL is the default time-to-live for access tokens (5 hours)
	AccessTokenTTL = 5 * time.Hour

	// ShortAccessTokenTTL is the reduced lifetime used when a deployment opts
	// for short-lived sessions (1 hour)
	ShortAccessTokenTTL = time.Hour

	// AccessTokenTTLSeconds is the default access token lifetime in seconds
	AccessTokenTTLSeconds = 5 * 3600
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)
