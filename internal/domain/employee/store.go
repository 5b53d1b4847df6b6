package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"talento/internal/platform/db"
)

const uniqueViolationCode = "23505"

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

const employeeColumns = `id, national_id, identification_type,
           first_surname, COALESCE(second_surname, ''), COALESCE(third_surname, ''),
           first_name, COALESCE(second_name, ''), COALESCE(third_name, ''),
           COALESCE(resolution_number, ''), resolution_date, possession_date,
           COALESCE(designation_memo_number, ''), designation_memo_date,
           COALESCE(item_number, ''), COALESCE(administrative_unit, ''), COALESCE(hierarchy, ''),
           COALESCE(reports_to, ''), COALESCE(organizational_unit, ''), COALESCE(position_title, ''),
           COALESCE(post, ''), COALESCE(office_address, ''), COALESCE(office_floor, ''),
           COALESCE(app_username, ''), COALESCE(generated_password, ''), COALESCE(internal_email, ''),
           state, COALESCE(discharge_reason, ''), COALESCE(discharge_memo_number, ''), discharge_date,
           registered_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.NationalID, &emp.IdentificationType,
		&emp.FirstSurname, &emp.SecondSurname, &emp.ThirdSurname,
		&emp.FirstName, &emp.SecondName, &emp.ThirdName,
		&emp.ResolutionNumber, &emp.ResolutionDate, &emp.PossessionDate,
		&emp.DesignationMemoNumber, &emp.DesignationMemoDate,
		&emp.ItemNumber, &emp.AdministrativeUnit, &emp.Hierarchy,
		&emp.ReportsTo, &emp.OrganizationalUnit, &emp.PositionTitle,
		&emp.Post, &emp.OfficeAddress, &emp.OfficeFloor,
		&emp.AppUsername, &emp.GeneratedPassword, &emp.InternalEmail,
		&emp.State, &emp.DischargeReason, &emp.DischargeMemoNumber, &emp.DischargeDate,
		&emp.RegisteredAt, &emp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Store) Create(ctx context.Context, input RegistrationInput, username, password, email string) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (national_id, identification_type,
      first_surname, second_surname, third_surname,
      first_name, second_name, third_name,
      resolution_number, resolution_date, possession_date,
      designation_memo_number, designation_memo_date,
      item_number, administrative_unit, hierarchy, reports_to,
      organizational_unit, position_title, post, office_address, office_floor,
      app_username, generated_password, internal_email, state)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
    RETURNING id
  `,
		input.NationalID, defaultIfEmpty(input.IdentificationType, "CI"),
		input.FirstSurname, nullIfEmpty(input.SecondSurname), nullIfEmpty(input.ThirdSurname),
		input.FirstName, nullIfEmpty(input.SecondName), nullIfEmpty(input.ThirdName),
		nullIfEmpty(input.ResolutionNumber), input.ResolutionDate, input.PossessionDate,
		nullIfEmpty(input.DesignationMemoNumber), input.DesignationMemoDate,
		nullIfEmpty(input.ItemNumber), nullIfEmpty(input.AdministrativeUnit), nullIfEmpty(input.Hierarchy), nullIfEmpty(input.ReportsTo),
		nullIfEmpty(input.OrganizationalUnit), nullIfEmpty(input.PositionTitle), nullIfEmpty(input.Post), nullIfEmpty(input.OfficeAddress), nullIfEmpty(input.OfficeFloor),
		username, password, email, StatePending,
	).Scan(&id)
	if err != nil {
		return 0, translatePgError(err)
	}
	return id, nil
}

func (s *Store) GetByNationalID(ctx context.Context, nationalID string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE national_id = $1
  `, nationalID)
	return scanEmployee(row)
}

func (s *Store) GetByID(ctx context.Context, employeeID int64) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID)
	return scanEmployee(row)
}

// List returns records most recently registered first.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY registered_at DESC, id DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

// CountByState reports every lifecycle state, zero-filled.
func (s *Store) CountByState(ctx context.Context) (map[string]int, error) {
	rows, err := s.DB.Query(ctx, "SELECT state, COUNT(*) FROM employees GROUP BY state")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int, len(States))
	for _, state := range States {
		counts[state] = 0
	}
	for rows.Next() {
		var state string
		var count int
		if err := rows.Scan(&state, &count); err != nil {
			return nil, err
		}
		if _, ok := counts[state]; ok {
			counts[state] = count
		}
	}
	return counts, rows.Err()
}

// ApplyPatch updates only the fields present in the patch through a
// static parameterized statement. Column names never come from input.
func (s *Store) ApplyPatch(ctx context.Context, nationalID string, patch Patch) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET identification_type = COALESCE($1, identification_type),
        first_surname = COALESCE($2, first_surname),
        second_surname = COALESCE($3, second_surname),
        third_surname = COALESCE($4, third_surname),
        first_name = COALESCE($5, first_name),
        second_name = COALESCE($6, second_name),
        third_name = COALESCE($7, third_name),
        resolution_number = COALESCE($8, resolution_number),
        resolution_date = COALESCE($9, resolution_date),
        possession_date = COALESCE($10, possession_date),
        designation_memo_number = COALESCE($11, designation_memo_number),
        designation_memo_date = COALESCE($12, designation_memo_date),
        item_number = COALESCE($13, item_number),
        administrative_unit = COALESCE($14, administrative_unit),
        hierarchy = COALESCE($15, hierarchy),
        reports_to = COALESCE($16, reports_to),
        organizational_unit = COALESCE($17, organizational_unit),
        position_title = COALESCE($18, position_title),
        post = COALESCE($19, post),
        office_address = COALESCE($20, office_address),
        office_floor = COALESCE($21, office_floor),
        updated_at = now()
    WHERE national_id = $22
  `,
		patch.IdentificationType,
		patch.FirstSurname, patch.SecondSurname, patch.ThirdSurname,
		patch.FirstName, patch.SecondName, patch.ThirdName,
		patch.ResolutionNumber, patch.ResolutionDate, patch.PossessionDate,
		patch.DesignationMemoNumber, patch.DesignationMemoDate,
		patch.ItemNumber, patch.AdministrativeUnit, patch.Hierarchy, patch.ReportsTo,
		patch.OrganizationalUnit, patch.PositionTitle, patch.Post, patch.OfficeAddress, patch.OfficeFloor,
		nationalID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateGeneratedCredentials refreshes the credential columns after a
// collision retry re-derived the username.
func (s *Store) UpdateGeneratedCredentials(ctx context.Context, nationalID, username, password, email string) error {
	cmd, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET app_username = $1, generated_password = $2, internal_email = $3, updated_at = now()
    WHERE national_id = $4
  `, username, password, email, nationalID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Discharge flips the record to discharged and deactivates the linked
// account in the same transaction, so a discharged employee can never
// authenticate again.
func (s *Store) Discharge(ctx context.Context, nationalID, reason, memoNumber string, date time.Time) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// an unset date stays NULL rather than the zero time
	var dischargeDate any
	if !date.IsZero() {
		dischargeDate = date
	}
	cmd, err := tx.Exec(ctx, `
    UPDATE employees
    SET state = $2, discharge_reason = $3, discharge_memo_number = $4, discharge_date = $5, updated_at = now()
    WHERE national_id = $1
  `, nationalID, StateDischarged, reason, memoNumber, dischargeDate)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, "UPDATE accounts SET active = false WHERE national_id = $1", nationalID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Reactivate is the exact inverse of Discharge. Section records are
// untouched; nothing is lost across a discharge/reactivate cycle.
func (s *Store) Reactivate(ctx context.Context, nationalID string) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
    UPDATE employees
    SET state = $2, updated_at = now()
    WHERE national_id = $1
  `, nationalID, StateActive)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, "UPDATE accounts SET active = true WHERE national_id = $1", nationalID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, ErrConflict)
	}
	return err
}
