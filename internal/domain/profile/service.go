package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// SaveSection decodes the payload into the fixed field set of the
// given kind and persists it: upsert for single-row sections, insert
// for many-valued ones. Unknown kinds and unknown fields are rejected
// at this boundary.
func (s *Service) SaveSection(ctx context.Context, employeeID int64, kind SectionKind, payload []byte) (int64, error) {
	if !ValidSectionKind(kind) {
		return 0, fmt.Errorf("%q: %w", kind, ErrUnknownSection)
	}

	switch kind {
	case SectionPersonalData:
		var pd PersonalData
		if err := decodeStrict(payload, &pd); err != nil {
			return 0, err
		}
		if err := validatePersonalData(pd); err != nil {
			return 0, err
		}
		return s.Store.UpsertPersonalData(ctx, employeeID, pd)

	case SectionRelative:
		var rel Relative
		if err := decodeStrict(payload, &rel); err != nil {
			return 0, err
		}
		if strings.TrimSpace(rel.Relationship) == "" || strings.TrimSpace(rel.Names) == "" {
			return 0, fmt.Errorf("parentesco y nombres son obligatorios: %w", ErrValidation)
		}
		return s.Store.InsertRelative(ctx, employeeID, rel)

	case SectionHighSchool:
		var rec HighSchoolRecord
		if err := decodeStrict(payload, &rec); err != nil {
			return 0, err
		}
		if strings.TrimSpace(rec.Institution) == "" {
			return 0, fmt.Errorf("falta la unidad educativa: %w", ErrValidation)
		}
		return s.Store.UpsertHighSchool(ctx, employeeID, rec)

	case SectionHigherEducation:
		var he HigherEducation
		if err := decodeStrict(payload, &he); err != nil {
			return 0, err
		}
		if strings.TrimSpace(he.Institution) == "" {
			return 0, fmt.Errorf("falta la institucion: %w", ErrValidation)
		}
		return s.Store.InsertHigherEducation(ctx, employeeID, he)

	case SectionCourse:
		var c Course
		if err := decodeStrict(payload, &c); err != nil {
			return 0, err
		}
		if strings.TrimSpace(c.Name) == "" {
			return 0, fmt.Errorf("falta el nombre del curso: %w", ErrValidation)
		}
		return s.Store.InsertCourse(ctx, employeeID, c)

	case SectionLanguage:
		var l Language
		if err := decodeStrict(payload, &l); err != nil {
			return 0, err
		}
		if strings.TrimSpace(l.Language) == "" {
			return 0, fmt.Errorf("falta el idioma: %w", ErrValidation)
		}
		return s.Store.InsertLanguage(ctx, employeeID, l)

	case SectionInsurance:
		var ins SocialInsurance
		if err := decodeStrict(payload, &ins); err != nil {
			return 0, err
		}
		if strings.TrimSpace(ins.Provider) == "" {
			return 0, fmt.Errorf("falta la gestora: %w", ErrValidation)
		}
		return s.Store.UpsertInsurance(ctx, employeeID, ins)

	case SectionWorkExperience:
		var we WorkExperience
		if err := decodeStrict(payload, &we); err != nil {
			return 0, err
		}
		if strings.TrimSpace(we.Employer) == "" {
			return 0, fmt.Errorf("falta la entidad empleadora: %w", ErrValidation)
		}
		return s.Store.InsertWorkExperience(ctx, employeeID, we)

	case SectionTrainingDelivered:
		var td TrainingDelivered
		if err := decodeStrict(payload, &td); err != nil {
			return 0, err
		}
		if strings.TrimSpace(td.CourseName) == "" {
			return 0, fmt.Errorf("falta el nombre del curso dictado: %w", ErrValidation)
		}
		return s.Store.InsertTrainingDelivered(ctx, employeeID, td)

	case SectionDocument:
		var doc Document
		if err := decodeStrict(payload, &doc); err != nil {
			return 0, err
		}
		if strings.TrimSpace(doc.FileName) == "" || strings.TrimSpace(doc.DocumentType) == "" {
			return 0, fmt.Errorf("tipo y nombre de archivo son obligatorios: %w", ErrValidation)
		}
		return s.Store.InsertDocument(ctx, employeeID, doc)
	}

	return 0, fmt.Errorf("%q: %w", kind, ErrUnknownSection)
}

func decodeStrict(payload []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%v: %w", err, ErrValidation)
	}
	return nil
}

func validatePersonalData(pd PersonalData) error {
	// the military service booklet is mandatory for male employees
	if pd.Gender == "M" && strings.TrimSpace(pd.MilitaryBookletNumber) == "" {
		return fmt.Errorf("el numero de libreta de servicio militar es obligatorio para varones: %w", ErrValidation)
	}
	return nil
}

func (s *Service) DeleteRow(ctx context.Context, employeeID int64, kind SectionKind, rowID int64) error {
	return s.Store.DeleteRow(ctx, employeeID, kind, rowID)
}

// Completion recomputes the presence-based progress every call; it is
// never cached because sections are edited independently and out of
// order.
func (s *Service) Completion(ctx context.Context, employeeID int64) (Completion, error) {
	sections, err := s.Store.SectionPresence(ctx, employeeID)
	if err != nil {
		return Completion{}, err
	}
	return Completion{
		Percentage: completionPercentage(sections),
		Sections:   sections,
	}, nil
}

func completionPercentage(sections map[string]bool) int {
	complete := 0
	for _, name := range trackedSections {
		if sections[name] {
			complete++
		}
	}
	return 100 * complete / len(trackedSections)
}

// Overview gathers every stored section for the review and print
// steps. Absent single-row sections come back as nil.
type Overview struct {
	PersonalData      *PersonalData       `json:"personalData"`
	Relatives         []Relative          `json:"relatives"`
	HighSchool        *HighSchoolRecord   `json:"highSchool"`
	HigherEducation   []HigherEducation   `json:"higherEducation"`
	Courses           []Course            `json:"courses"`
	Languages         []Language          `json:"languages"`
	Insurance         *SocialInsurance    `json:"insurance"`
	WorkExperience    []WorkExperience    `json:"workExperience"`
	TrainingDelivered []TrainingDelivered `json:"trainingDelivered"`
	Documents         []Document          `json:"documents"`
}

func (s *Service) Overview(ctx context.Context, employeeID int64) (Overview, error) {
	var out Overview

	pd, err := s.Store.GetPersonalData(ctx, employeeID)
	switch {
	case err == nil:
		out.PersonalData = &pd
	case !errors.Is(err, ErrNotFound):
		return Overview{}, err
	}

	hs, err := s.Store.GetHighSchool(ctx, employeeID)
	switch {
	case err == nil:
		out.HighSchool = &hs
	case !errors.Is(err, ErrNotFound):
		return Overview{}, err
	}

	ins, err := s.Store.GetInsurance(ctx, employeeID)
	switch {
	case err == nil:
		out.Insurance = &ins
	case !errors.Is(err, ErrNotFound):
		return Overview{}, err
	}

	if out.Relatives, err = s.Store.ListRelatives(ctx, employeeID); err != nil {
		return Overview{}, err
	}
	if out.HigherEducation, err = s.Store.ListHigherEducation(ctx, employeeID); err != nil {
		return Overview{}, err
	}
	if out.Courses, err = s.Store.ListCourses(ctx, employeeID); err != nil {
		return Overview{}, err
	}
	if out.Languages, err = s.Store.ListLanguages(ctx, employeeID); err != nil {
		return Overview{}, err
	}
	if out.WorkExperience, err = s.Store.ListWorkExperience(ctx, employeeID); err != nil {
		return Overview{}, err
	}
	if out.TrainingDelivered, err = s.Store.ListTrainingDelivered(ctx, employeeID); err != nil {
		return Overview{}, err
	}
	if out.Documents, err = s.Store.ListDocuments(ctx, employeeID); err != nil {
		return Overview{}, err
	}

	return out, nil
}
