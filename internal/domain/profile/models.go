package profile

import "time"

// SectionKind tags each sub-form of the employee profile. Kinds are a
// closed catalog; anything else is rejected at the boundary.
type SectionKind string

const (
	SectionPersonalData      SectionKind = "personal_data"
	SectionRelative          SectionKind = "relative"
	SectionHighSchool        SectionKind = "high_school"
	SectionHigherEducation   SectionKind = "higher_education"
	SectionCourse            SectionKind = "course"
	SectionLanguage          SectionKind = "language"
	SectionInsurance         SectionKind = "insurance"
	SectionWorkExperience    SectionKind = "work_experience"
	SectionTrainingDelivered SectionKind = "training_delivered"
	SectionDocument          SectionKind = "document"
)

// singleRowKinds hold at most one row per employee and are saved with
// an upsert inside one transaction.
func (k SectionKind) SingleRow() bool {
	switch k {
	case SectionPersonalData, SectionHighSchool, SectionInsurance:
		return true
	}
	return false
}

func ValidSectionKind(k SectionKind) bool {
	switch k {
	case SectionPersonalData, SectionRelative, SectionHighSchool, SectionHigherEducation,
		SectionCourse, SectionLanguage, SectionInsurance, SectionWorkExperience,
		SectionTrainingDelivered, SectionDocument:
		return true
	}
	return false
}

// PersonalData is the extended personal data sheet; at most one per
// employee.
type PersonalData struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	Gender          string     `json:"gender"`
	IDIssuedAt      string     `json:"idIssuedAt"`
	IDExpiryDate    *time.Time `json:"idExpiryDate"`
	BirthDate       *time.Time `json:"birthDate"`
	BirthCountry    string     `json:"birthCountry"`
	BirthDepartment string     `json:"birthDepartment"`
	BirthProvince   string     `json:"birthProvince"`
	BirthPlace      string     `json:"birthPlace"`

	MilitaryBookletNumber string `json:"militaryBookletNumber"`
	BloodType             string `json:"bloodType"`
	CivilStatus           string `json:"civilStatus"`
	ChildrenCount         *int   `json:"childrenCount"`
	DependentsCount       *int   `json:"dependentsCount"`

	HomeAddress string `json:"homeAddress"`
	HomeNumber  string `json:"homeNumber"`
	HomeZone    string `json:"homeZone"`
	City        string `json:"city"`
	HousingType string `json:"housingType"`

	EmailPrimary   string `json:"emailPrimary"`
	EmailSecondary string `json:"emailSecondary"`
	PhoneLandline  string `json:"phoneLandline"`
	PhoneMobile    string `json:"phoneMobile"`

	AdminCareerNumber      string     `json:"adminCareerNumber"`
	DrivingLicense         string     `json:"drivingLicense"`
	LicenseCategory        string     `json:"licenseCategory"`
	EmergencyContact       string     `json:"emergencyContact"`
	SwornDeclarationNumber string     `json:"swornDeclarationNumber"`
	SwornDeclarationDate   *time.Time `json:"swornDeclarationDate"`
}

type Relative struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	Relationship         string     `json:"relationship"`
	FirstSurname         string     `json:"firstSurname"`
	SecondSurname        string     `json:"secondSurname"`
	Names                string     `json:"names"`
	Nationality          string     `json:"nationality"`
	Phone                string     `json:"phone"`
	Gender               string     `json:"gender"`
	BirthDate            *time.Time `json:"birthDate"`
	IdentificationType   string     `json:"identificationType"`
	IdentificationNumber string     `json:"identificationNumber"`
}

type HighSchoolRecord struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	Institution    string `json:"institution"`
	City           string `json:"city"`
	Country        string `json:"country"`
	GraduationYear *int   `json:"graduationYear"`
	DiplomaNumber  string `json:"diplomaNumber"`
}

type HigherEducation struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Level       string `json:"level"`
	StartYear   *int   `json:"startYear"`
	EndYear     *int   `json:"endYear"`
	TitleNumber string `json:"titleNumber"`
}

type Course struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	Name              string `json:"name"`
	Institution       string `json:"institution"`
	Hours             *int   `json:"hours"`
	Year              *int   `json:"year"`
	CertificateNumber string `json:"certificateNumber"`
}

type Language struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	Language     string `json:"language"`
	SpokenLevel  string `json:"spokenLevel"`
	WrittenLevel string `json:"writtenLevel"`
	ReadingLevel string `json:"readingLevel"`
}

type SocialInsurance struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	Provider        string     `json:"provider"`
	NUANumber       string     `json:"nuaNumber"`
	AffiliationDate *time.Time `json:"affiliationDate"`
	HealthCenter    string     `json:"healthCenter"`
}

type WorkExperience struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	Employer         string     `json:"employer"`
	Position         string     `json:"position"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Salary           *float64   `json:"salary"`
	SeparationReason string     `json:"separationReason"`
}

type TrainingDelivered struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	CourseName  string `json:"courseName"`
	Institution string `json:"institution"`
	Hours       *int   `json:"hours"`
	Year        *int   `json:"year"`
}

// Document records file metadata only; the binary lives with the
// external upload collaborator.
type Document struct {
	ID         int64 `json:"id,omitempty"`
	EmployeeID int64 `json:"employeeId,omitempty"`

	DocumentType string    `json:"documentType"`
	FileName     string    `json:"fileName"`
	FilePath     string    `json:"filePath"`
	UploadedAt   time.Time `json:"uploadedAt,omitempty"`
}

// Tracked sections reported by the completion aggregator. Academic is
// satisfied by any academic row: high school, higher education, course
// or language.
const (
	TrackedPersonalData = "personalData"
	TrackedAcademic     = "academic"
	TrackedInsurance    = "insurance"
	TrackedExperience   = "experience"
)

var trackedSections = []string{TrackedPersonalData, TrackedAcademic, TrackedInsurance, TrackedExperience}

type Completion struct {
	Percentage int             `json:"percentage"`
	Sections   map[string]bool `json:"sections"`
}
