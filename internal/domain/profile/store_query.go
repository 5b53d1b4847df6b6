package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) GetPersonalData(ctx context.Context, employeeID int64) (PersonalData, error) {
	var pd PersonalData
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, COALESCE(gender, ''), COALESCE(id_issued_at, ''), id_expiry_date,
           birth_date, COALESCE(birth_country, ''), COALESCE(birth_department, ''),
           COALESCE(birth_province, ''), COALESCE(birth_place, ''),
           COALESCE(military_booklet_number, ''), COALESCE(blood_type, ''), COALESCE(civil_status, ''),
           children_count, dependents_count,
           COALESCE(home_address, ''), COALESCE(home_number, ''), COALESCE(home_zone, ''),
           COALESCE(city, ''), COALESCE(housing_type, ''),
           COALESCE(email_primary, ''), COALESCE(email_secondary, ''),
           COALESCE(phone_landline, ''), COALESCE(phone_mobile, ''),
           COALESCE(admin_career_number, ''), COALESCE(driving_license, ''), COALESCE(license_category, ''),
           COALESCE(emergency_contact, ''), COALESCE(sworn_declaration_number, ''), sworn_declaration_date
    FROM personal_data
    WHERE employee_id = $1
  `, employeeID).Scan(
		&pd.ID, &pd.EmployeeID, &pd.Gender, &pd.IDIssuedAt, &pd.IDExpiryDate,
		&pd.BirthDate, &pd.BirthCountry, &pd.BirthDepartment, &pd.BirthProvince, &pd.BirthPlace,
		&pd.MilitaryBookletNumber, &pd.BloodType, &pd.CivilStatus, &pd.ChildrenCount, &pd.DependentsCount,
		&pd.HomeAddress, &pd.HomeNumber, &pd.HomeZone, &pd.City, &pd.HousingType,
		&pd.EmailPrimary, &pd.EmailSecondary, &pd.PhoneLandline, &pd.PhoneMobile,
		&pd.AdminCareerNumber, &pd.DrivingLicense, &pd.LicenseCategory,
		&pd.EmergencyContact, &pd.SwornDeclarationNumber, &pd.SwornDeclarationDate,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return PersonalData{}, ErrNotFound
	}
	if err != nil {
		return PersonalData{}, err
	}
	return pd, nil
}

func (s *Store) GetHighSchool(ctx context.Context, employeeID int64) (HighSchoolRecord, error) {
	var rec HighSchoolRecord
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, institution, COALESCE(city, ''), COALESCE(country, ''), graduation_year, COALESCE(diploma_number, '')
    FROM high_school_records
    WHERE employee_id = $1
  `, employeeID).Scan(&rec.ID, &rec.EmployeeID, &rec.Institution, &rec.City, &rec.Country, &rec.GraduationYear, &rec.DiplomaNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return HighSchoolRecord{}, ErrNotFound
	}
	if err != nil {
		return HighSchoolRecord{}, err
	}
	return rec, nil
}

func (s *Store) GetInsurance(ctx context.Context, employeeID int64) (SocialInsurance, error) {
	var ins SocialInsurance
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, provider, COALESCE(nua_number, ''), affiliation_date, COALESCE(health_center, '')
    FROM social_insurance
    WHERE employee_id = $1
  `, employeeID).Scan(&ins.ID, &ins.EmployeeID, &ins.Provider, &ins.NUANumber, &ins.AffiliationDate, &ins.HealthCenter)
	if errors.Is(err, pgx.ErrNoRows) {
		return SocialInsurance{}, ErrNotFound
	}
	if err != nil {
		return SocialInsurance{}, err
	}
	return ins, nil
}

func (s *Store) ListRelatives(ctx context.Context, employeeID int64) ([]Relative, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, relationship, COALESCE(first_surname, ''), COALESCE(second_surname, ''), names,
           COALESCE(nationality, ''), COALESCE(phone, ''), COALESCE(gender, ''), birth_date,
           COALESCE(identification_type, ''), COALESCE(identification_number, '')
    FROM relatives
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Relative
	for rows.Next() {
		var rel Relative
		if err := rows.Scan(&rel.ID, &rel.EmployeeID, &rel.Relationship, &rel.FirstSurname, &rel.SecondSurname, &rel.Names,
			&rel.Nationality, &rel.Phone, &rel.Gender, &rel.BirthDate, &rel.IdentificationType, &rel.IdentificationNumber); err != nil {
			return nil, err
		}
		out = append(out, rel)
	}
	return out, rows.Err()
}

func (s *Store) ListHigherEducation(ctx context.Context, employeeID int64) ([]HigherEducation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, institution, COALESCE(degree, ''), COALESCE(level, ''), start_year, end_year, COALESCE(title_number, '')
    FROM higher_education
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HigherEducation
	for rows.Next() {
		var he HigherEducation
		if err := rows.Scan(&he.ID, &he.EmployeeID, &he.Institution, &he.Degree, &he.Level, &he.StartYear, &he.EndYear, &he.TitleNumber); err != nil {
			return nil, err
		}
		out = append(out, he)
	}
	return out, rows.Err()
}

func (s *Store) ListCourses(ctx context.Context, employeeID int64) ([]Course, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, name, COALESCE(institution, ''), hours, year, COALESCE(certificate_number, '')
    FROM training_courses
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Name, &c.Institution, &c.Hours, &c.Year, &c.CertificateNumber); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ListLanguages(ctx context.Context, employeeID int64) ([]Language, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, language, COALESCE(spoken_level, ''), COALESCE(written_level, ''), COALESCE(reading_level, '')
    FROM languages
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Language
	for rows.Next() {
		var l Language
		if err := rows.Scan(&l.ID, &l.EmployeeID, &l.Language, &l.SpokenLevel, &l.WrittenLevel, &l.ReadingLevel); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) ListWorkExperience(ctx context.Context, employeeID int64) ([]WorkExperience, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, employer, COALESCE(position, ''), start_date, end_date, salary, COALESCE(separation_reason, '')
    FROM work_experience
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WorkExperience
	for rows.Next() {
		var we WorkExperience
		if err := rows.Scan(&we.ID, &we.EmployeeID, &we.Employer, &we.Position, &we.StartDate, &we.EndDate, &we.Salary, &we.SeparationReason); err != nil {
			return nil, err
		}
		out = append(out, we)
	}
	return out, rows.Err()
}

func (s *Store) ListTrainingDelivered(ctx context.Context, employeeID int64) ([]TrainingDelivered, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, course_name, COALESCE(institution, ''), hours, year
    FROM training_delivered
    WHERE employee_id = $1
    ORDER BY id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TrainingDelivered
	for rows.Next() {
		var td TrainingDelivered
		if err := rows.Scan(&td.ID, &td.EmployeeID, &td.CourseName, &td.Institution, &td.Hours, &td.Year); err != nil {
			return nil, err
		}
		out = append(out, td)
	}
	return out, rows.Err()
}

func (s *Store) ListDocuments(ctx context.Context, employeeID int64) ([]Document, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, document_type, file_name, file_path, uploaded_at
    FROM documents
    WHERE employee_id = $1
    ORDER BY uploaded_at DESC, id DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.EmployeeID, &doc.DocumentType, &doc.FileName, &doc.FilePath, &doc.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}
