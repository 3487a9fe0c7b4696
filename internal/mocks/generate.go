// Package mocks provides mock implementations for testing the session layer.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	api := mocks.NewMockAccountsAPI(ctrl)
//	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, nil)
package mocks

// Generate mock for AccountsAPI interface from internal/ports.
// This creates MockAccountsAPI with methods for all AccountsAPI interface methods:
// Login, Register, Logout, FetchOwnProfile, FetchProfileByName, UpdateProfile,
// ChangePassword, DeleteOwnAccount, DeleteAccountByID, ListPostsForUser, DeletePost
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=accounts_api_mock.go github.com/openfeed/feedctl/internal/ports AccountsAPI

// Generate mock for SessionCache interface from internal/ports.
// This creates MockSessionCache with methods for all SessionCache interface methods:
// Save, Load, Clear
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_cache_mock.go github.com/openfeed/feedctl/internal/ports SessionCache
