package mocks

import "github.com/yasirshahid/contactManager-server/internal/service/auth"

// MockPasswordService implements auth.PasswordHasher and auth.PasswordVerifier
// for testing. The default hash is the plaintext with a fixed prefix.
type MockPasswordService struct {
	// ShouldSucceed forces Compare to succeed regardless of input
	ShouldSucceed bool

	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

var (
	_ auth.PasswordHasher   = (*MockPasswordService)(nil)
	_ auth.PasswordVerifier = (*MockPasswordService)(nil)
)

// MockHashPrefix is prepended to plaintext by the default Hash.
const MockHashPrefix = "hashed:"

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return MockHashPrefix + password, nil
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordService) Compare(hashedPassword, password string) error {
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed || hashedPassword == MockHashPrefix+password {
		return nil
	}
	return auth.ErrPasswordMismatch
}
