package usecase

import "context"

// AuthProvider is the external identity collaborator (Firebase in
// production). Credentials never touch the local store.
type AuthProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (idToken, refreshToken string, err error)
	RefreshIDToken(refreshToken string) (idToken, newRefreshToken string, err error)
}
