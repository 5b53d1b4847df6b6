package seed

import (
	"context"

	"talento/internal/domain/identity"
	"talento/internal/domain/params"
	"talento/internal/platform/config"
	"talento/internal/platform/db"
)

// Run provisions the bootstrap admin account and the reference
// catalogs. Every statement is idempotent so seeding can run on every
// start.
func Run(ctx context.Context, q db.Querier, cfg config.Config) error {
	if err := ensureAdminAccount(ctx, q, cfg); err != nil {
		return err
	}
	return ensureParameters(ctx, q)
}

func ensureAdminAccount(ctx context.Context, q db.Querier, cfg config.Config) error {
	_, err := q.Exec(ctx, `
    INSERT INTO accounts (national_id, username, email, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT (username) DO NOTHING
  `,
		cfg.SeedAdminCI,
		cfg.SeedAdminUsername,
		cfg.SeedAdminUsername+"@"+cfg.EmailDomain,
		identity.Digest(cfg.SeedAdminPassword, cfg.PasswordSalt),
		identity.RoleAdmin,
	)
	return err
}

type seedParameter struct {
	kind string
	code string
	name string
}

// Catalog contents follow the institution's paper forms; codes are
// stable, names are display only.
var seedParameters = []seedParameter{
	{params.KindGender, "F", "Femenino"},
	{params.KindGender, "M", "Masculino"},

	{params.KindCivilStatus, "S", "Soltero(a)"},
	{params.KindCivilStatus, "C", "Casado(a)"},
	{params.KindCivilStatus, "V", "Viudo(a)"},
	{params.KindCivilStatus, "D", "Divorciado(a)"},

	{params.KindBloodType, "O+", "O positivo"},
	{params.KindBloodType, "O-", "O negativo"},
	{params.KindBloodType, "A+", "A positivo"},
	{params.KindBloodType, "A-", "A negativo"},
	{params.KindBloodType, "B+", "B positivo"},
	{params.KindBloodType, "B-", "B negativo"},
	{params.KindBloodType, "AB+", "AB positivo"},
	{params.KindBloodType, "AB-", "AB negativo"},

	{params.KindDepartment, "LP", "La Paz"},
	{params.KindDepartment, "CB", "Cochabamba"},
	{params.KindDepartment, "SC", "Santa Cruz"},
	{params.KindDepartment, "OR", "Oruro"},
	{params.KindDepartment, "PT", "Potosi"},
	{params.KindDepartment, "CH", "Chuquisaca"},
	{params.KindDepartment, "TJ", "Tarija"},
	{params.KindDepartment, "BE", "Beni"},
	{params.KindDepartment, "PA", "Pando"},

	{params.KindCountry, "BO", "Bolivia"},
	{params.KindCountry, "AR", "Argentina"},
	{params.KindCountry, "BR", "Brasil"},
	{params.KindCountry, "CL", "Chile"},
	{params.KindCountry, "PE", "Peru"},
	{params.KindCountry, "PY", "Paraguay"},

	{params.KindNationality, "BOL", "Boliviana"},
	{params.KindNationality, "EXT", "Extranjera"},

	{params.KindInsuranceProvider, "CNS", "Caja Nacional de Salud"},
	{params.KindInsuranceProvider, "CPS", "Caja Petrolera de Salud"},
	{params.KindInsuranceProvider, "CBES", "Caja de Salud de la Banca Estatal"},
	{params.KindInsuranceProvider, "COS", "Corporacion del Seguro Social Militar"},

	{params.KindRelationship, "CON", "Conyuge"},
	{params.KindRelationship, "HIJ", "Hijo(a)"},
	{params.KindRelationship, "PAD", "Padre"},
	{params.KindRelationship, "MAD", "Madre"},
	{params.KindRelationship, "HER", "Hermano(a)"},
}

func ensureParameters(ctx context.Context, q db.Querier) error {
	for _, p := range seedParameters {
		_, err := q.Exec(ctx, `
      INSERT INTO parameters (kind, code, name)
      VALUES ($1, $2, $3)
      ON CONFLICT (kind, code) DO NOTHING
    `, p.kind, p.code, p.name)
		if err != nil {
			return err
		}
	}
	return nil
}
