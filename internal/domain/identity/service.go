package identity

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Service struct {
	Store      *Store
	Challenges *ChallengeStore

	PasswordSalt string
	JWTSecret    string
	SessionTTL   time.Duration
	EmailDomain  string
}

func NewService(store *Store, challenges *ChallengeStore, salt, jwtSecret string, sessionTTL time.Duration, emailDomain string) *Service {
	return &Service{
		Store:        store,
		Challenges:   challenges,
		PasswordSalt: salt,
		JWTSecret:    jwtSecret,
		SessionTTL:   sessionTTL,
		EmailDomain:  emailDomain,
	}
}

// NewChallenge issues a fresh verification code bound to the declared
// role. Called for the initial login form and again after every failed
// attempt.
func (s *Service) NewChallenge(role string) (Challenge, error) {
	if !ValidRole(role) {
		return Challenge{}, fmt.Errorf("rol desconocido %q: %w", role, ErrRoleMismatch)
	}
	return s.Challenges.Issue(role)
}

// Login runs the four checks in their fixed order: challenge code,
// national-id cross-check, password digest, declared role. Each fails
// with its own reason; the code check runs first so a bad code never
// reveals whether the username exists.
func (s *Service) Login(ctx context.Context, challengeID, suppliedCode, nationalID, username, password string) (SessionIdentity, error) {
	declaredRole, err := s.Challenges.Redeem(challengeID, suppliedCode)
	if err != nil {
		return SessionIdentity{}, err
	}

	acc, err := s.Store.FindActiveByUsername(ctx, username)
	if errors.Is(err, ErrAccountNotFound) {
		return SessionIdentity{}, ErrWrongCredentials
	}
	if err != nil {
		// storage failures stay opaque, never a credential message
		return SessionIdentity{}, err
	}
	if acc.NationalID != nationalID {
		return SessionIdentity{}, ErrWrongCredentials
	}

	if !VerifyDigest(password, s.PasswordSalt, acc.PasswordHash) {
		return SessionIdentity{}, ErrWrongPassword
	}

	if acc.Role != declaredRole {
		return SessionIdentity{}, ErrRoleMismatch
	}

	token, err := GenerateToken(s.JWTSecret, Claims{
		AccountID:  acc.ID,
		Username:   acc.Username,
		NationalID: acc.NationalID,
		Role:       acc.Role,
	}, s.SessionTTL)
	if err != nil {
		return SessionIdentity{}, err
	}

	if err := s.Store.UpdateLastAccess(ctx, acc.ID); err != nil {
		return SessionIdentity{}, err
	}

	return SessionIdentity{
		AccountID:  acc.ID,
		Username:   acc.Username,
		NationalID: acc.NationalID,
		Email:      acc.Email,
		Role:       acc.Role,
		Token:      token,
	}, nil
}

// DeriveFor derives unique credentials for a new employee against the
// live accounts table.
func (s *Service) DeriveFor(ctx context.Context, firstName, firstSurname, secondSurname, nationalID string) (Credentials, error) {
	return DeriveCredentials(firstName, firstSurname, secondSurname, nationalID, s.EmailDomain, func(candidate string) (bool, error) {
		return s.Store.UsernameExists(ctx, candidate)
	})
}

// ProvisionAccount stores the account row for freshly derived
// credentials. The caller owns the pairing with the employee row.
func (s *Service) ProvisionAccount(ctx context.Context, nationalID string, creds Credentials, role string) (int64, error) {
	return s.Store.Create(ctx, Account{
		NationalID:   nationalID,
		Username:     creds.Username,
		Email:        creds.InternalEmail,
		PasswordHash: Digest(creds.InitialPassword, s.PasswordSalt),
		Role:         role,
	})
}
