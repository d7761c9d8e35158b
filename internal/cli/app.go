// Package cli implements the interactive payledger session: the startup
// login gate, the command REPL, and the prompt-driven entry and report flows.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"payledger/internal/auth"
	"payledger/internal/config"
	"payledger/internal/logging"
	"payledger/internal/models"
	"payledger/internal/repositories/records"
	"payledger/internal/repositories/users"
	"payledger/internal/services"
)

// App wires the services to the interactive session. One App serves one
// user session; there is no concurrent use.
type App struct {
	config        *config.Config
	authService   services.AuthService
	entryService  services.EntryService
	reportService services.ReportService
	logger        logging.Logger
	reader        *bufio.Reader
	out           io.Writer
	session       *services.Session
}

// NewApp builds an App over file-backed stores at the configured paths.
func NewApp(cfg *config.Config, logger logging.Logger) *App {
	recordRepo := records.NewFileRepository(cfg.RecordsFile)
	userRepo := users.NewFileRepository(cfg.UsersFile)

	return &App{
		config:        cfg,
		authService:   services.NewAuthService(userRepo, cfg, logger),
		entryService:  services.NewEntryService(recordRepo, logger),
		reportService: services.NewReportService(recordRepo, logger),
		logger:        logger,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}
}

// Run performs the startup login and then hands control to the REPL.
// A failed login is returned to the caller; exit policy is the entrypoint's.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to payledger (type 'help' for commands)")

	if err := a.Login(ctx); err != nil {
		return err
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// isAdmin verifies the session token signature and checks the role claim.
// Any verification failure means no admin access.
func (a *App) isAdmin() bool {
	if a.session == nil {
		return false
	}
	claims, err := auth.GetClaimsFromToken(a.session.Token, []byte(a.config.SecretKey))
	if err != nil {
		return false
	}
	return claims.Role == models.RoleAdmin
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.session.UserID, a.session.Role)
}
