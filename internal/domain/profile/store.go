package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"talento/internal/platform/db"
)

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

// UpsertPersonalData saves the single extended personal data row and,
// in the same transaction, moves a pending employee to in_process on
// the first save. The row lock closes the duplicate-insert race under
// concurrent submissions.
func (s *Store) UpsertPersonalData(ctx context.Context, employeeID int64, pd PersonalData) (int64, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, "SELECT id FROM personal_data WHERE employee_id = $1 FOR UPDATE", employeeID).Scan(&id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `
      INSERT INTO personal_data (employee_id, gender, id_issued_at, id_expiry_date,
        birth_date, birth_country, birth_department, birth_province, birth_place,
        military_booklet_number, blood_type, civil_status, children_count, dependents_count,
        home_address, home_number, home_zone, city, housing_type,
        email_primary, email_secondary, phone_landline, phone_mobile,
        admin_career_number, driving_license, license_category, emergency_contact,
        sworn_declaration_number, sworn_declaration_date)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)
      RETURNING id
    `, personalDataArgs(employeeID, pd)...).Scan(&id)
		if err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		if _, err := tx.Exec(ctx, `
      UPDATE personal_data
      SET gender = $2, id_issued_at = $3, id_expiry_date = $4,
          birth_date = $5, birth_country = $6, birth_department = $7, birth_province = $8, birth_place = $9,
          military_booklet_number = $10, blood_type = $11, civil_status = $12, children_count = $13, dependents_count = $14,
          home_address = $15, home_number = $16, home_zone = $17, city = $18, housing_type = $19,
          email_primary = $20, email_secondary = $21, phone_landline = $22, phone_mobile = $23,
          admin_career_number = $24, driving_license = $25, license_category = $26, emergency_contact = $27,
          sworn_declaration_number = $28, sworn_declaration_date = $29,
          updated_at = now()
      WHERE employee_id = $1
    `, personalDataArgs(employeeID, pd)...); err != nil {
			return 0, err
		}
	}

	if _, err := tx.Exec(ctx, `
    UPDATE employees SET state = $2, updated_at = now()
    WHERE id = $1 AND state = $3
  `, employeeID, "in_process", "pending"); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func personalDataArgs(employeeID int64, pd PersonalData) []any {
	return []any{
		employeeID, pd.Gender, pd.IDIssuedAt, pd.IDExpiryDate,
		pd.BirthDate, pd.BirthCountry, pd.BirthDepartment, pd.BirthProvince, pd.BirthPlace,
		pd.MilitaryBookletNumber, pd.BloodType, pd.CivilStatus, pd.ChildrenCount, pd.DependentsCount,
		pd.HomeAddress, pd.HomeNumber, pd.HomeZone, pd.City, pd.HousingType,
		pd.EmailPrimary, pd.EmailSecondary, pd.PhoneLandline, pd.PhoneMobile,
		pd.AdminCareerNumber, pd.DrivingLicense, pd.LicenseCategory, pd.EmergencyContact,
		pd.SwornDeclarationNumber, pd.SwornDeclarationDate,
	}
}

func (s *Store) UpsertHighSchool(ctx context.Context, employeeID int64, rec HighSchoolRecord) (int64, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, "SELECT id FROM high_school_records WHERE employee_id = $1 FOR UPDATE", employeeID).Scan(&id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `
      INSERT INTO high_school_records (employee_id, institution, city, country, graduation_year, diploma_number)
      VALUES ($1,$2,$3,$4,$5,$6)
      RETURNING id
    `, employeeID, rec.Institution, rec.City, rec.Country, rec.GraduationYear, rec.DiplomaNumber).Scan(&id)
		if err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		if _, err := tx.Exec(ctx, `
      UPDATE high_school_records
      SET institution = $2, city = $3, country = $4, graduation_year = $5, diploma_number = $6
      WHERE employee_id = $1
    `, employeeID, rec.Institution, rec.City, rec.Country, rec.GraduationYear, rec.DiplomaNumber); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) UpsertInsurance(ctx context.Context, employeeID int64, ins SocialInsurance) (int64, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, "SELECT id FROM social_insurance WHERE employee_id = $1 FOR UPDATE", employeeID).Scan(&id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `
      INSERT INTO social_insurance (employee_id, provider, nua_number, affiliation_date, health_center)
      VALUES ($1,$2,$3,$4,$5)
      RETURNING id
    `, employeeID, ins.Provider, ins.NUANumber, ins.AffiliationDate, ins.HealthCenter).Scan(&id)
		if err != nil {
			return 0, err
		}
	case err != nil:
		return 0, err
	default:
		if _, err := tx.Exec(ctx, `
      UPDATE social_insurance
      SET provider = $2, nua_number = $3, affiliation_date = $4, health_center = $5
      WHERE employee_id = $1
    `, employeeID, ins.Provider, ins.NUANumber, ins.AffiliationDate, ins.HealthCenter); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) InsertRelative(ctx context.Context, employeeID int64, rel Relative) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO relatives (employee_id, relationship, first_surname, second_surname, names,
      nationality, phone, gender, birth_date, identification_type, identification_number)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING id
  `, employeeID, rel.Relationship, rel.FirstSurname, rel.SecondSurname, rel.Names,
		rel.Nationality, rel.Phone, rel.Gender, rel.BirthDate, rel.IdentificationType, rel.IdentificationNumber).Scan(&id)
	return id, err
}

func (s *Store) InsertHigherEducation(ctx context.Context, employeeID int64, he HigherEducation) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO higher_education (employee_id, institution, degree, level, start_year, end_year, title_number)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, employeeID, he.Institution, he.Degree, he.Level, he.StartYear, he.EndYear, he.TitleNumber).Scan(&id)
	return id, err
}

func (s *Store) InsertCourse(ctx context.Context, employeeID int64, c Course) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO training_courses (employee_id, name, institution, hours, year, certificate_number)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, employeeID, c.Name, c.Institution, c.Hours, c.Year, c.CertificateNumber).Scan(&id)
	return id, err
}

func (s *Store) InsertLanguage(ctx context.Context, employeeID int64, l Language) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO languages (employee_id, language, spoken_level, written_level, reading_level)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, employeeID, l.Language, l.SpokenLevel, l.WrittenLevel, l.ReadingLevel).Scan(&id)
	return id, err
}

func (s *Store) InsertWorkExperience(ctx context.Context, employeeID int64, we WorkExperience) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO work_experience (employee_id, employer, position, start_date, end_date, salary, separation_reason)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, employeeID, we.Employer, we.Position, we.StartDate, we.EndDate, we.Salary, we.SeparationReason).Scan(&id)
	return id, err
}

func (s *Store) InsertTrainingDelivered(ctx context.Context, employeeID int64, td TrainingDelivered) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO training_delivered (employee_id, course_name, institution, hours, year)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, employeeID, td.CourseName, td.Institution, td.Hours, td.Year).Scan(&id)
	return id, err
}

func (s *Store) InsertDocument(ctx context.Context, employeeID int64, doc Document) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO documents (employee_id, document_type, file_name, file_path)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, employeeID, doc.DocumentType, doc.FileName, doc.FilePath).Scan(&id)
	return id, err
}

// deleteStatements maps each kind to its static delete. Table names
// never come from the request, and every delete is scoped to the
// owning employee so one record cannot erase rows of another.
var deleteStatements = map[SectionKind]string{
	SectionPersonalData:      "DELETE FROM personal_data WHERE id = $1 AND employee_id = $2",
	SectionRelative:          "DELETE FROM relatives WHERE id = $1 AND employee_id = $2",
	SectionHighSchool:        "DELETE FROM high_school_records WHERE id = $1 AND employee_id = $2",
	SectionHigherEducation:   "DELETE FROM higher_education WHERE id = $1 AND employee_id = $2",
	SectionCourse:            "DELETE FROM training_courses WHERE id = $1 AND employee_id = $2",
	SectionLanguage:          "DELETE FROM languages WHERE id = $1 AND employee_id = $2",
	SectionInsurance:         "DELETE FROM social_insurance WHERE id = $1 AND employee_id = $2",
	SectionWorkExperience:    "DELETE FROM work_experience WHERE id = $1 AND employee_id = $2",
	SectionTrainingDelivered: "DELETE FROM training_delivered WHERE id = $1 AND employee_id = $2",
	SectionDocument:          "DELETE FROM documents WHERE id = $1 AND employee_id = $2",
}

func (s *Store) DeleteRow(ctx context.Context, employeeID int64, kind SectionKind, rowID int64) error {
	stmt, ok := deleteStatements[kind]
	if !ok {
		return ErrUnknownSection
	}
	cmd, err := s.DB.Exec(ctx, stmt, rowID, employeeID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SectionPresence answers, for one employee, whether each tracked
// section has at least one row.
func (s *Store) SectionPresence(ctx context.Context, employeeID int64) (map[string]bool, error) {
	var personal, academic, insurance, experience bool
	err := s.DB.QueryRow(ctx, `
    SELECT EXISTS (SELECT 1 FROM personal_data WHERE employee_id = $1),
           EXISTS (SELECT 1 FROM high_school_records WHERE employee_id = $1)
             OR EXISTS (SELECT 1 FROM higher_education WHERE employee_id = $1)
             OR EXISTS (SELECT 1 FROM training_courses WHERE employee_id = $1)
             OR EXISTS (SELECT 1 FROM languages WHERE employee_id = $1),
           EXISTS (SELECT 1 FROM social_insurance WHERE employee_id = $1),
           EXISTS (SELECT 1 FROM work_experience WHERE employee_id = $1)
  `, employeeID).Scan(&personal, &academic, &insurance, &experience)
	if err != nil {
		return nil, err
	}
	return map[string]bool{
		TrackedPersonalData: personal,
		TrackedAcademic:     academic,
		TrackedInsurance:    insurance,
		TrackedExperience:   experience,
	}, nil
}
