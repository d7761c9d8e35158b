// Package services contains the application services of payledger: the
// authentication gate, the record entry flow, and the report engine.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"payledger/internal/auth"
	"payledger/internal/common"
	"payledger/internal/config"
	"payledger/internal/logging"
	"payledger/internal/models"
	"payledger/internal/repositories/users"
)

// Session is the result of a successful login: the authenticated identity
// plus a signed token carrying the role claim.
type Session struct {
	UserID string
	Role   models.Role
	Token  string
}

// AuthService defines the authentication operations for the CLI.
//
// Contract:
//   - Login: single-attempt credential check; returns a Session or one of
//     common.ErrNoUsers, common.ErrUserNotFound, common.ErrBadPassword.
//     The service never terminates the process; exit policy belongs to the
//     entrypoint.
//   - CreateAccount: validate role and id uniqueness, then append. The store
//     is never touched when validation fails.
//   - ListAccounts: all stored accounts, in file order.
type AuthService interface {
	Login(ctx context.Context, id string, password []byte) (*Session, error)
	CreateAccount(ctx context.Context, id string, password, role string) (*models.UserAccount, error)
	ListAccounts(ctx context.Context) ([]models.UserAccount, error)
}

type authService struct {
	users         users.Repository
	secretKey     []byte
	tokenValidity time.Duration
	logger        logging.Logger
}

// NewAuthService constructs an AuthService over the given user store.
func NewAuthService(repo users.Repository, cfg *config.Config, logger logging.Logger) AuthService {
	return &authService{
		users:         repo,
		secretKey:     []byte(cfg.SecretKey),
		tokenValidity: cfg.SessionTokenValidityDuration,
		logger:        logger.With("component", "auth"),
	}
}

func (a *authService) Login(ctx context.Context, id string, password []byte) (*Session, error) {
	accounts, err := a.users.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if len(accounts) == 0 {
		return nil, common.ErrNoUsers
	}

	var account *models.UserAccount
	for i := range accounts {
		if accounts[i].ID == id {
			account = &accounts[i]
			break
		}
	}
	if account == nil {
		a.logger.Warn(ctx, "login failed", "id", id, "reason", "unknown id")
		return nil, common.ErrUserNotFound
	}

	if subtle.ConstantTimeCompare([]byte(account.Password), password) == 0 {
		a.logger.Warn(ctx, "login failed", "id", id, "reason", "bad password")
		return nil, common.ErrBadPassword
	}

	token, err := auth.GenerateToken(account.ID, account.Role, a.secretKey, a.tokenValidity)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	a.logger.Info(ctx, "login successful", "id", account.ID, "role", account.Role)
	return &Session{UserID: account.ID, Role: account.Role, Token: token}, nil
}

func (a *authService) CreateAccount(ctx context.Context, id string, password, role string) (*models.UserAccount, error) {
	parsedRole, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}

	existing, err := a.users.LoadIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load user ids: %w", err)
	}
	if _, ok := existing[id]; ok {
		return nil, common.ErrDuplicateID
	}

	account := &models.UserAccount{ID: id, Password: password, Role: parsedRole}
	if err := a.users.Append(ctx, account); err != nil {
		return nil, fmt.Errorf("append user: %w", err)
	}

	a.logger.Info(ctx, "account created", "id", id, "role", parsedRole)
	return account, nil
}

func (a *authService) ListAccounts(ctx context.Context) ([]models.UserAccount, error) {
	return a.users.LoadAll(ctx)
}
