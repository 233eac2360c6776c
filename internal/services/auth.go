// Package services contains PhishGuard's business logic. This file implements
// AuthService: registration input validation, password hashing and
// username-or-email login against the credential store.
package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/phishguard/internal/common"
	"github.com/dmitrijs2005/phishguard/internal/dbx"
	"github.com/dmitrijs2005/phishguard/internal/logging"
	"github.com/dmitrijs2005/phishguard/internal/models"
	"github.com/dmitrijs2005/phishguard/internal/repositories/repomanager"
	"github.com/dmitrijs2005/phishguard/internal/security/password"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+$`)

// PasswordHasher is implemented by *password.Hasher.
type PasswordHasher interface {
	Hash(ctx context.Context, password []byte) ([]byte, error)
	Verify(ctx context.Context, hash, password []byte) (bool, error)
}

// RegisterRequest carries the registration form. Password fields are bytes so
// callers can wipe them after use.
type RegisterRequest struct {
	Username        string
	Email           string
	Password        []byte
	ConfirmPassword []byte
}

// AuthService provides registration and login. It keeps no user state
// between calls: every login reads the credential store again.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	logger      logging.Logger

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService constructs an AuthService over db using the repositories
// vended by m.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, logger logging.Logger) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		logger:      logger,
	}
}

// ValidateRegistration applies the registration rules in order and returns
// the first violation.
func ValidateRegistration(req RegisterRequest) error {
	if req.Username == "" || req.Email == "" || len(req.Password) == 0 || len(req.ConfirmPassword) == 0 {
		return ErrMissingFields
	}
	if !bytes.Equal(req.Password, req.ConfirmPassword) {
		return ErrPasswordMismatch
	}
	if utf8.RuneCount(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if len(req.Password) > password.MaxLength {
		return ErrPasswordTooLong
	}
	return nil
}

// Register validates req, hashes the password and stores a new user.
//
// Validation failures return the matching sentinel (ErrMissingFields,
// ErrPasswordMismatch, ErrPasswordTooShort, ErrInvalidEmail,
// ErrPasswordTooLong); a taken username or email returns ErrDuplicateUser;
// any other store failure wraps ErrStorageUnavailable.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := ValidateRegistration(req); err != nil {
		s.logger.Info(ctx, "registration rejected", "username", req.Username, "reason", err.Error())
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{UserName: req.Username, Email: req.Email, PasswordHash: hash}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := s.repomanager.Users(tx).Create(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			s.logger.Info(ctx, "registration rejected", "username", req.Username, "reason", ErrDuplicateUser.Error())
			return nil, ErrDuplicateUser
		}
		s.logger.Error(ctx, "error creating user", "username", req.Username, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.UserName)
	return user, nil
}

// Login reports whether password is correct for the user whose username or
// email equals identifier. Unknown identifiers and wrong passwords both yield
// (false, nil); a store failure yields ErrStorageUnavailable so it is never
// mistaken for bad credentials.
func (s *AuthService) Login(ctx context.Context, identifier string, pw []byte) (bool, error) {
	hash, err := s.repomanager.Users(s.db).GetPasswordHash(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Same bcrypt work as a real check.
			_, _ = s.hasher.Verify(ctx, s.placeholderHash(ctx), pw)
			s.logger.Info(ctx, "login failed", "identifier", identifier)
			return false, nil
		}
		s.logger.Error(ctx, "error reading credentials", "identifier", identifier, "error", err)
		return false, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	ok, err := s.hasher.Verify(ctx, hash, pw)
	if err != nil {
		if errors.Is(err, password.ErrInvalidHash) {
			s.logger.Error(ctx, "stored password hash is unreadable", "identifier", identifier)
			return false, nil
		}
		return false, err
	}

	if !ok {
		s.logger.Info(ctx, "login failed", "identifier", identifier)
		return false, nil
	}

	s.logger.Info(ctx, "login succeeded", "identifier", identifier)
	return true, nil
}

func (s *AuthService) placeholderHash(ctx context.Context) []byte {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash(context.WithoutCancel(ctx), []byte("phishguard-placeholder"))
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
