package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/klantsync/klantsync/internal/portal/domain"
	"github.com/klantsync/klantsync/internal/portal/store"
	"github.com/klantsync/klantsync/pkg/cryptox"
	"github.com/klantsync/klantsync/pkg/idx"
	"github.com/klantsync/klantsync/pkg/sessionx"
	"github.com/klantsync/klantsync/pkg/slogx"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 80
	passwordMinLen = 8
)

type AuthService struct {
	Store    store.Store
	Sessions *sessionx.Manager
}

// Register creates a new account and returns it with a fresh session token.
// All form violations are collected and reported together.
func (s *AuthService) Register(
	ctx context.Context,
	username string,
	email string,
	password string,
	passwordConfirm string,
	role domain.Role,
) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	// 1. Collect every field violation before reporting. Lengths count
	// characters, not bytes.
	usernameLen := utf8.RuneCountInString(username)
	verr := &ValidationError{}
	if usernameLen < usernameMinLen || usernameLen > usernameMaxLen {
		verr.Add("username", "username must be between 3 and 80 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		verr.Add("email", "invalid email address")
	}
	if utf8.RuneCountInString(password) < passwordMinLen {
		verr.Add("password", "password must be at least 8 characters")
	}
	if password != passwordConfirm {
		verr.Add("password_confirm", "passwords do not match")
	}
	if !role.Valid() {
		verr.Add("role", "role must be freelancer or client")
	}

	// 2. Availability checks, only for well-formed values.
	if usernameLen >= usernameMinLen && usernameLen <= usernameMaxLen {
		if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
			verr.Add("username", "username is already taken")
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check username availability", slog.Any("error", err))
			return domain.User{}, "", err
		}
	}
	if _, err := mail.ParseAddress(email); err == nil {
		if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
			verr.Add("email", "an account with this email already exists")
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to check email availability", slog.Any("error", err))
			return domain.User{}, "", err
		}
	}
	if err := verr.Err(); err != nil {
		return domain.User{}, "", err
	}

	// 3. Hash and insert.
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, "", err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// A registration race on the same email or username lost to the
		// unique index; report it the same way the pre-check would have.
		if errors.Is(err, store.ErrAlreadyExists) {
			verr.Add("email", "an account with this email or username already exists")
			return domain.User{}, "", verr
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	token, err := s.Sessions.Mint(user.ID, user.Email, user.Username, user.Role.String(), now)
	if err != nil {
		log.Error("failed to mint session", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", user.Role.String()),
	)
	return user, token, nil
}

// Login verifies credentials and mints a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempt for unknown email")
			return domain.User{}, "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login attempt with wrong password",
			slog.String("user_id", user.ID),
		)
		return domain.User{}, "", ErrInvalidCredentials
	}

	token, err := s.Sessions.Mint(user.ID, user.Email, user.Username, user.Role.String(), time.Now().UTC())
	if err != nil {
		log.Error("failed to mint session", slog.Any("error", err))
		return domain.User{}, "", err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return user, token, nil
}
