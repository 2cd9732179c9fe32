package migration

import (
	"context"
)

// AdminProvisioner creates an administrator account when it does not exist yet
type AdminProvisioner interface {
	EnsureAdmin(ctx context.Context, username, email, password string) (bool, error)
}

// BootstrapAdmin holds the credentials of the first administrator
type BootstrapAdmin struct {
	Username string
	Email    string
	Password string
}

// CreateDefaultAdmin seeds the bootstrap administrator. It is a no-op when no credentials
// are configured or the account already exists.
func CreateDefaultAdmin(ctx context.Context, provisioner AdminProvisioner, admin BootstrapAdmin) (bool, error) {
	if admin.Username == "" || admin.Password == "" {
		return false, nil
	}
	return provisioner.EnsureAdmin(ctx, admin.Username, admin.Email, admin.Password)
}
