package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/yasirshahid/contactManager-server/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// UserTokenJWTService returns a MockJWTService whose tokens are the user ID
// itself. Any token that parses as a UUID validates to that user; anything
// else fails with auth.ErrInvalidToken.
func UserTokenJWTService() *MockJWTService {
	return &MockJWTService{
		GenerateTokenFn: func(_ context.Context, userID uuid.UUID) (string, error) {
			return userID.String(), nil
		},
		ValidateTokenFn: func(_ context.Context, tokenString string) (*auth.Claims, error) {
			id, err := uuid.Parse(tokenString)
			if err != nil {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: id, Subject: id.String()}, nil
		},
	}
}
