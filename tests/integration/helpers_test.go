package integration

import (
	identityapp "github.com/storehub/backend/internal/application/identity"
)

// adminProfile is a throwaway profile for session manipulation tests
func adminProfile() identityapp.AdminResponse {
	return identityapp.AdminResponse{
		ID:    "00000000-0000-0000-0000-000000000001",
		Name:  "Alice",
		Email: "alice@example.com",
	}
}
