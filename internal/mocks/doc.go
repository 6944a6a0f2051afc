// Package mocks provides shared test doubles for the store, token and
// password interfaces.
//
// Two styles are offered. The Mock* types are hand-written fakes with
// optional function fields and an in-memory default, suited to HTTP-level
// tests that drive several calls through a router. The TestifyMock* types
// embed testify's mock.Mock for tests that assert exact call expectations.
//
//	users := mocks.NewMockUserStore()
//	jwt := &mocks.MockJWTService{
//	    GenerateTokenFn: func(ctx context.Context, userID uuid.UUID) (string, error) {
//	        return "mocked-token", nil
//	    },
//	}
package mocks
