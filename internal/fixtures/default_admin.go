// Package fixtures seeds baseline data a fresh deployment needs.
package fixtures

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/worktrack/attendance-backend-go/internal/pkg/database"
)

const (
	defaultAdminCode  = "ADMIN001"
	defaultAdminName  = "System Administrator"
	defaultAdminEmail = "admin@company.com"
)

// EnsureDefaultAdmin creates the default admin account if it does not exist
// yet. The insert is idempotent: an already-present admin (including one
// whose password or schedule was changed later) is left untouched.
func EnsureDefaultAdmin(ctx context.Context, db *database.DB, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	query := `
		INSERT INTO employees (
			employee_code, full_name, email, password_hash, role,
			work_start_time, work_end_time, is_active
		) VALUES ($1, $2, $3, $4, 'admin', '09:00', '18:00', TRUE)
		ON CONFLICT (employee_code) DO NOTHING
	`

	if _, err := db.Exec(ctx, query, defaultAdminCode, defaultAdminName, defaultAdminEmail, string(hash)); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	return nil
}
