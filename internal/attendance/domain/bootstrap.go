package domain

// SeedAdmin describes the account created on first boot when the users
// table is empty.
type SeedAdmin struct {
	Username string
	Password string
	Email    string
	FullName string
}

// DefaultSeedAdmin matches the account the original deployment shipped with.
// The password is hashed before it is stored.
func DefaultSeedAdmin() SeedAdmin {
	return SeedAdmin{
		Username: "admin",
		Password: "admin123",
		Email:    "admin@attendance.com",
		FullName: "Admin User",
	}
}
