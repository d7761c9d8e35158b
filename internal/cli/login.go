package cli

import (
	"context"
	"errors"
	"fmt"

	"payledger/internal/common"
	"payledger/internal/models"
)

// Login runs the single-attempt startup login. On failure the error is
// returned for the entrypoint to act on; no retry, no lockout.
func (a *App) Login(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Login - enter user ID", a.out)
	if err != nil {
		return fmt.Errorf("read user id: %w", err)
	}
	if id == "" {
		return errors.New("no user ID entered")
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, id, password)
	if err != nil {
		return err
	}
	a.session = session

	fmt.Fprintf(a.out, "Login successful. Authorization: %s\n", session.Role)
	if session.Role != models.RoleAdmin {
		fmt.Fprintf(a.out, "User %q logged in with view-only access. You may view reports but cannot enter data.\n", session.UserID)
	}
	return nil
}
