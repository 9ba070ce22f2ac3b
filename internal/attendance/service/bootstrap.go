package service

import (
	"context"
	"fmt"

	"github.com/ssonuprakashks-droid/attendance/internal/attendance/domain"
	"github.com/ssonuprakashks-droid/attendance/internal/attendance/store"
	"github.com/ssonuprakashks-droid/attendance/pkg/cryptox"
	"github.com/ssonuprakashks-droid/attendance/pkg/idx"
	"github.com/ssonuprakashks-droid/attendance/pkg/slogx"
)

// BootstrapService seeds the admin account on first boot.
type BootstrapService struct {
	Store store.Store
	Seed  domain.SeedAdmin
}

// EnsureSeedAdmin creates the seed admin user if the users table is empty.
// Subsequent boots are a no-op.
func (s *BootstrapService) EnsureSeedAdmin(ctx context.Context) error {
	log := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("check users table: %w", err)
	}
	if !empty {
		return nil
	}

	passHash, err := cryptox.HashPassword(s.Seed.Password)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     s.Seed.Username,
		PasswordHash: passHash,
		Email:        s.Seed.Email,
		FullName:     s.Seed.FullName,
		Role:         domain.RoleAdmin,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}

	log.Info("seed admin account created", "user_id", user.ID, "username", user.Username)
	return nil
}
