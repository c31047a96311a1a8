package reconcile

import "hris-sync/core/reconcile"

// SchemaProfile maps logical employee fields to HR table columns.
type SchemaProfile struct {
	// TableName is the name of the employee table.
	TableName string

	// Columns maps logical field names to actual database column names.
	Columns map[string]string
}

// Column name constants for logical field references.
const (
	ColEmployeeID   = "employee_id"
	ColFullName     = "full_name"
	ColDepartment   = "department"
	ColPosition     = "position_title"
	ColSupervisorID = "supervisor_employee_id"
	ColPhone        = "phone_number"
	ColGender       = "gender"
	ColGrade        = "grade_interval"
)

// ExcludedGrade is the grade interval whose employees have no directory identity.
const ExcludedGrade = "Non Staff"

// DefaultProfile returns the standard HR schema for table.
func DefaultProfile(table string) SchemaProfile {
	if table == "" {
		table = "employees"
	}
	return SchemaProfile{
		TableName: table,
		Columns: map[string]string{
			ColEmployeeID:   "employee_id",
			ColFullName:     "full_name",
			ColDepartment:   "department",
			ColPosition:     "position_title",
			ColSupervisorID: "supervisor_employee_id",
			ColPhone:        "phone_number",
			ColGender:       "gender",
			ColGrade:        "grade_interval",
		},
	}
}

// column returns the physical column for a logical field.
func (p SchemaProfile) column(field string) string {
	if c, ok := p.Columns[field]; ok && c != "" {
		return c
	}
	return field
}

// DirectorySchema maps logical entry attributes to directory attribute names.
type DirectorySchema struct {
	AccountName string
	DisplayName string
	EmployeeID  string
	Department  string
	Title       string
	Manager     string
	Mobile      string
	Gender      string
}

// DefaultDirectorySchema returns the Active Directory attribute names.
// genderAttr is site specific and falls back to "gender".
func DefaultDirectorySchema(genderAttr string) DirectorySchema {
	if genderAttr == "" {
		genderAttr = "gender"
	}
	return DirectorySchema{
		AccountName: "sAMAccountName",
		DisplayName: "displayName",
		EmployeeID:  "employeeID",
		Department:  "department",
		Title:       "title",
		Manager:     "manager",
		Mobile:      "mobile",
		Gender:      genderAttr,
	}
}

// Attributes returns the attribute list requested by searches.
func (s DirectorySchema) Attributes() []string {
	return []string{s.AccountName, s.DisplayName, s.EmployeeID, s.Department, s.Title, s.Manager, s.Mobile, s.Gender}
}

// attribute returns the directory attribute for a logical diff key.
func (s DirectorySchema) attribute(logical string) (string, bool) {
	switch logical {
	case reconcile.AttrDepartment:
		return s.Department, true
	case reconcile.AttrTitle:
		return s.Title, true
	case reconcile.AttrManager:
		return s.Manager, true
	case reconcile.AttrMobile:
		return s.Mobile, true
	case reconcile.AttrEmployeeID:
		return s.EmployeeID, true
	case reconcile.AttrGender:
		return s.Gender, true
	default:
		return "", false
	}
}
