package params

import (
	"context"
	"fmt"

	"talento/internal/platform/db"
)

// Catalog kinds seeded at first initialization. The core never writes
// this table.
const (
	KindGender            = "gender"
	KindDepartment        = "department"
	KindCountry           = "country"
	KindCivilStatus       = "civil_status"
	KindBloodType         = "blood_type"
	KindInsuranceProvider = "insurance_provider"
	KindRelationship      = "relationship"
	KindNationality       = "nationality"
)

var Kinds = []string{
	KindGender, KindDepartment, KindCountry, KindCivilStatus,
	KindBloodType, KindInsuranceProvider, KindRelationship, KindNationality,
}

func ValidKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

type Parameter struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Store struct {
	DB db.Querier
}

func NewStore(q db.Querier) *Store {
	return &Store{DB: q}
}

func (s *Store) List(ctx context.Context, kind string) ([]Parameter, error) {
	if !ValidKind(kind) {
		return nil, fmt.Errorf("unknown parameter kind %q", kind)
	}

	rows, err := s.DB.Query(ctx, "SELECT code, name FROM parameters WHERE kind = $1 ORDER BY name", kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Parameter
	for rows.Next() {
		var p Parameter
		if err := rows.Scan(&p.Code, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
