package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payledger/internal/common"
)

// AddUser runs the account entry loop: one id/password/role triple per pass,
// terminated by entering "end" as the id. Duplicate ids and unknown roles are
// rejected before anything is written. Existing accounts are listed at the end.
func (a *App) AddUser(ctx context.Context) error {
	fmt.Fprintln(a.out, "User account entry - type 'end' as the ID to finish.")

	for {
		id, err := GetSimpleText(a.reader, "Enter user ID (or 'end' to finish)", a.out)
		if err != nil {
			return err
		}
		if strings.EqualFold(id, "end") {
			break
		}
		if id == "" {
			fmt.Fprintln(a.out, "User ID cannot be empty.")
			continue
		}

		password, err := GetPassword(a.out)
		if err != nil {
			return err
		}
		if len(password) == 0 {
			fmt.Fprintln(a.out, "Password cannot be empty.")
			continue
		}

		role, err := GetSimpleText(a.reader, "Enter authorization code (Admin or User)", a.out)
		if err != nil {
			common.WipeByteArray(password)
			return err
		}

		_, err = a.authService.CreateAccount(ctx, id, string(password), role)
		common.WipeByteArray(password)

		switch {
		case errors.Is(err, common.ErrDuplicateID):
			fmt.Fprintln(a.out, "That user ID already exists. Choose another.")
		case errors.Is(err, common.ErrInvalidRole):
			fmt.Fprintln(a.out, "Authorization code must be 'Admin' or 'User'. Try again.")
		case err != nil:
			a.logger.Error(ctx, "could not create account", "error", err)
			fmt.Fprintf(a.out, "Warning: could not write account to file: %v\n", err)
		default:
			fmt.Fprintf(a.out, "User %s added.\n", id)
		}
	}

	return a.ListUsers(ctx)
}
