package reports

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"talento/internal/domain/employee"
	"talento/internal/domain/profile"
)

type Service struct {
	Employees *employee.Service
	Profiles  *profile.Service
}

func NewService(employees *employee.Service, profiles *profile.Service) *Service {
	return &Service{Employees: employees, Profiles: profiles}
}

// TrackingNumber identifies a submitted form on the paper side of the
// process. Stable per employee and year so reprints match.
func TrackingNumber(employeeID int64, at time.Time) string {
	return fmt.Sprintf("TAL-%04d-%d", 1000+employeeID%9000, at.Year())
}

// RenderForm produces the printable R-100 personnel form for one
// employee: header data, issued credentials and the current completion
// state of every tracked section.
func (s *Service) RenderForm(ctx context.Context, nationalID string) ([]byte, error) {
	emp, err := s.Employees.Get(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	completion, err := s.Profiles.Completion(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	overview, err := s.Profiles.Overview(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Formulario R-100 - Registro de Funcionario")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Tramite: %s", TrackingNumber(emp.ID, time.Now())))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Carnet de identidad: %s (%s)", emp.NationalID, emp.IdentificationType))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Nombre completo: %s", fullName(emp)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Cargo: %s - %s", emp.PositionTitle, emp.OrganizationalUnit))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Estado: %s", emp.State))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Credenciales generadas")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Usuario: %s", emp.AppUsername))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Correo interno: %s", emp.InternalEmail))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Avance de la ficha: %d%%", completion.Percentage))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range sectionLines(completion) {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.Cell(0, 7, fmt.Sprintf("Parientes registrados: %d", len(overview.Relatives)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Estudios superiores: %d", len(overview.HigherEducation)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Experiencia laboral: %d", len(overview.WorkExperience)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Documentos de respaldo: %d", len(overview.Documents)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fullName(emp employee.Employee) string {
	parts := []string{emp.FirstName, emp.SecondName, emp.ThirdName, emp.FirstSurname, emp.SecondSurname, emp.ThirdSurname}
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}

func sectionLines(completion profile.Completion) []string {
	labels := []struct {
		key  string
		name string
	}{
		{profile.TrackedPersonalData, "Datos personales"},
		{profile.TrackedAcademic, "Formacion academica"},
		{profile.TrackedInsurance, "Seguro social"},
		{profile.TrackedExperience, "Experiencia laboral"},
	}

	out := make([]string, 0, len(labels))
	for _, label := range labels {
		mark := "pendiente"
		if completion.Sections[label.key] {
			mark = "completo"
		}
		out = append(out, fmt.Sprintf("  %s: %s", label.name, mark))
	}
	return out
}
