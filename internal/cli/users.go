package cli

import (
	"context"
	"fmt"
)

// ListUsers prints all stored user accounts in a compact table.
func (a *App) ListUsers(ctx context.Context) error {
	accounts, err := a.authService.ListAccounts(ctx)
	if err != nil {
		a.logger.Error(ctx, "could not list accounts", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "\nExisting user accounts:")
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "(no user accounts found)")
		return nil
	}
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "ID: %s    Auth: %s\n", acc.ID, acc.Role)
	}
	return nil
}
