package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"talento/internal/domain/identity"
)

type Service struct {
	Store    *Store
	Identity *identity.Service
}

func NewService(store *Store, ident *identity.Service) *Service {
	return &Service{Store: store, Identity: ident}
}

// Register creates the employee record and its paired account as one
// logical unit. The employee row is written first; if the account then
// fails for anything but a username collision, the row is kept and the
// failure is reported for manual reconciliation rather than rolled
// back. A username collision gets exactly one re-derivation retry
// before surfacing as a conflict.
func (s *Service) Register(ctx context.Context, input RegistrationInput) (RegistrationResult, error) {
	if err := validateRegistration(input); err != nil {
		return RegistrationResult{}, err
	}

	creds, err := s.Identity.DeriveFor(ctx, input.FirstName, input.FirstSurname, input.SecondSurname, input.NationalID)
	if err != nil {
		return RegistrationResult{}, err
	}

	employeeID, err := s.Store.Create(ctx, input, creds.Username, creds.InitialPassword, creds.InternalEmail)
	if err != nil {
		return RegistrationResult{}, err
	}

	if _, err := s.Identity.ProvisionAccount(ctx, input.NationalID, creds, identity.RoleEmployee); err != nil {
		if !errors.Is(err, identity.ErrAccountConflict) {
			return RegistrationResult{}, fmt.Errorf("%w: %v", ErrAccountProvisioning, err)
		}

		// lost the race for the derived username; re-derive once against
		// the accounts table, which remains the source of truth
		creds, err = s.Identity.DeriveFor(ctx, input.FirstName, input.FirstSurname, input.SecondSurname, input.NationalID)
		if err != nil {
			return RegistrationResult{}, fmt.Errorf("%w: %v", ErrAccountProvisioning, err)
		}
		if _, err := s.Identity.ProvisionAccount(ctx, input.NationalID, creds, identity.RoleEmployee); err != nil {
			if errors.Is(err, identity.ErrAccountConflict) {
				return RegistrationResult{}, fmt.Errorf("%w: %v", ErrConflict, err)
			}
			return RegistrationResult{}, fmt.Errorf("%w: %v", ErrAccountProvisioning, err)
		}
		if err := s.Store.UpdateGeneratedCredentials(ctx, input.NationalID, creds.Username, creds.InitialPassword, creds.InternalEmail); err != nil {
			return RegistrationResult{}, err
		}
	}

	return RegistrationResult{
		EmployeeID:      employeeID,
		Username:        creds.Username,
		InitialPassword: creds.InitialPassword,
		InternalEmail:   creds.InternalEmail,
	}, nil
}

func validateRegistration(input RegistrationInput) error {
	if strings.TrimSpace(input.NationalID) == "" {
		return fmt.Errorf("falta el carnet de identidad: %w", ErrValidation)
	}
	if strings.TrimSpace(input.FirstName) == "" {
		return fmt.Errorf("falta el primer nombre: %w", ErrValidation)
	}
	if strings.TrimSpace(input.FirstSurname) == "" {
		return fmt.Errorf("falta el primer apellido: %w", ErrValidation)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, nationalID string) (Employee, error) {
	return s.Store.GetByNationalID(ctx, nationalID)
}

func (s *Service) GetByID(ctx context.Context, employeeID int64) (Employee, error) {
	return s.Store.GetByID(ctx, employeeID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Employee, error) {
	return s.Store.List(ctx, limit, offset)
}

func (s *Service) CountByState(ctx context.Context) (map[string]int, error) {
	return s.Store.CountByState(ctx)
}

func (s *Service) Update(ctx context.Context, nationalID string, patch Patch) error {
	return s.Store.ApplyPatch(ctx, nationalID, patch)
}

// Discharge applies unconditionally regardless of the current state;
// transition guards are a known gap carried over from the paper
// process.
func (s *Service) Discharge(ctx context.Context, nationalID, reason, memoNumber string, date time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("falta el motivo de baja: %w", ErrValidation)
	}
	return s.Store.Discharge(ctx, nationalID, reason, memoNumber, date)
}

func (s *Service) Reactivate(ctx context.Context, nationalID string) error {
	return s.Store.Reactivate(ctx, nationalID)
}
