package auth

import "time"

// AuthResult is returned by Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Username    string
}
