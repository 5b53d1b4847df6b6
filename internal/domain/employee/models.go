package employee

import "time"

const (
	StatePending    = "pending"
	StateInProcess  = "in_process"
	StateActive     = "active"
	StateDischarged = "discharged"
)

// States lists every lifecycle state in dashboard order. countByState
// reports all of them, zero-filled.
var States = []string{StatePending, StateInProcess, StateActive, StateDischarged}

// Employee is the authoritative personnel record (form R-100). The
// national id is the correlation key towards the account and every
// profile section.
type Employee struct {
	ID                 int64  `json:"id"`
	NationalID         string `json:"nationalId"`
	IdentificationType string `json:"identificationType"`

	FirstSurname  string `json:"firstSurname"`
	SecondSurname string `json:"secondSurname,omitempty"`
	ThirdSurname  string `json:"thirdSurname,omitempty"`
	FirstName     string `json:"firstName"`
	SecondName    string `json:"secondName,omitempty"`
	ThirdName     string `json:"thirdName,omitempty"`

	ResolutionNumber      string     `json:"resolutionNumber,omitempty"`
	ResolutionDate        *time.Time `json:"resolutionDate,omitempty"`
	PossessionDate        *time.Time `json:"possessionDate,omitempty"`
	DesignationMemoNumber string     `json:"designationMemoNumber,omitempty"`
	DesignationMemoDate   *time.Time `json:"designationMemoDate,omitempty"`

	ItemNumber         string `json:"itemNumber,omitempty"`
	AdministrativeUnit string `json:"administrativeUnit,omitempty"`
	Hierarchy          string `json:"hierarchy,omitempty"`
	ReportsTo          string `json:"reportsTo,omitempty"`
	OrganizationalUnit string `json:"organizationalUnit,omitempty"`
	PositionTitle      string `json:"positionTitle,omitempty"`
	Post               string `json:"post,omitempty"`
	OfficeAddress      string `json:"officeAddress,omitempty"`
	OfficeFloor        string `json:"officeFloor,omitempty"`

	AppUsername       string `json:"appUsername,omitempty"`
	GeneratedPassword string `json:"-"`
	InternalEmail     string `json:"internalEmail,omitempty"`

	State               string     `json:"state"`
	DischargeReason     string     `json:"dischargeReason,omitempty"`
	DischargeMemoNumber string     `json:"dischargeMemoNumber,omitempty"`
	DischargeDate       *time.Time `json:"dischargeDate,omitempty"`
	RegisteredAt        time.Time  `json:"registeredAt"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// RegistrationInput carries the fields the registrar captures from the
// R-100 intake form. Credentials and state are derived, never supplied.
type RegistrationInput struct {
	NationalID         string `json:"nationalId"`
	IdentificationType string `json:"identificationType"`

	FirstSurname  string `json:"firstSurname"`
	SecondSurname string `json:"secondSurname"`
	ThirdSurname  string `json:"thirdSurname"`
	FirstName     string `json:"firstName"`
	SecondName    string `json:"secondName"`
	ThirdName     string `json:"thirdName"`

	ResolutionNumber      string     `json:"resolutionNumber"`
	ResolutionDate        *time.Time `json:"resolutionDate"`
	PossessionDate        *time.Time `json:"possessionDate"`
	DesignationMemoNumber string     `json:"designationMemoNumber"`
	DesignationMemoDate   *time.Time `json:"designationMemoDate"`

	ItemNumber         string `json:"itemNumber"`
	AdministrativeUnit string `json:"administrativeUnit"`
	Hierarchy          string `json:"hierarchy"`
	ReportsTo          string `json:"reportsTo"`
	OrganizationalUnit string `json:"organizationalUnit"`
	PositionTitle      string `json:"positionTitle"`
	Post               string `json:"post"`
	OfficeAddress      string `json:"officeAddress"`
	OfficeFloor        string `json:"officeFloor"`
}

// RegistrationResult echoes the issued credentials back to the
// registrar so they can be handed to the new employee.
type RegistrationResult struct {
	EmployeeID      int64  `json:"employeeId"`
	Username        string `json:"username"`
	InitialPassword string `json:"initialPassword"`
	InternalEmail   string `json:"internalEmail"`
}

// Patch is the typed update applied by the registrar. Nil fields keep
// the stored value; the update statement is static and parameterized.
type Patch struct {
	IdentificationType *string `json:"identificationType"`

	FirstSurname  *string `json:"firstSurname"`
	SecondSurname *string `json:"secondSurname"`
	ThirdSurname  *string `json:"thirdSurname"`
	FirstName     *string `json:"firstName"`
	SecondName    *string `json:"secondName"`
	ThirdName     *string `json:"thirdName"`

	ResolutionNumber      *string    `json:"resolutionNumber"`
	ResolutionDate        *time.Time `json:"resolutionDate"`
	PossessionDate        *time.Time `json:"possessionDate"`
	DesignationMemoNumber *string    `json:"designationMemoNumber"`
	DesignationMemoDate   *time.Time `json:"designationMemoDate"`

	ItemNumber         *string `json:"itemNumber"`
	AdministrativeUnit *string `json:"administrativeUnit"`
	Hierarchy          *string `json:"hierarchy"`
	ReportsTo          *string `json:"reportsTo"`
	OrganizationalUnit *string `json:"organizationalUnit"`
	PositionTitle      *string `json:"positionTitle"`
	Post               *string `json:"post"`
	OfficeAddress      *string `json:"officeAddress"`
	OfficeFloor        *string `json:"officeFloor"`
}
