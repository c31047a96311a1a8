package reconcile

import "time"

// SourceRecord is one employee row from the HR system-of-record.
// Values are kept as the store returned them; normalization happens in the matcher and differ.
type SourceRecord struct {
	EmployeeID           string `json:"employee_id"`
	FullName             string `json:"full_name"`
	Department           string `json:"department"`
	PositionTitle        string `json:"position_title"`
	SupervisorEmployeeID string `json:"supervisor_employee_id,omitempty"`
	PhoneNumber          string `json:"phone_number,omitempty"`
	Gender               string `json:"gender,omitempty"`
}

// DirectoryEntry is one identity in the directory, in canonical shape.
type DirectoryEntry struct {
	AccountName string `json:"account_name"`
	DisplayName string `json:"display_name"`
	EmployeeID  string `json:"employee_id,omitempty"`
	Department  string `json:"department,omitempty"`
	Title       string `json:"title,omitempty"`
	// ManagerReference is the UniquePath of the manager's entry.
	ManagerReference string `json:"manager,omitempty"`
	Mobile           string `json:"mobile,omitempty"`
	Gender           string `json:"gender,omitempty"`
	// UniquePath is the entry's distinguished name.
	UniquePath string `json:"path"`
}

// MatchKind tags how a source record was paired with a directory entry.
type MatchKind string

const (
	// MatchExactKey pairs on identical employee ids.
	MatchExactKey MatchKind = "exact-key"
	// MatchFuzzyName pairs on display name similarity and triggers identity repair.
	MatchFuzzyName MatchKind = "fuzzy-name"
	// MatchUnmatched marks a record with no acceptable counterpart.
	MatchUnmatched MatchKind = "unmatched"
)

// MatchedPair associates one source record with at most one directory entry.
type MatchedPair struct {
	Source SourceRecord
	Entry  *DirectoryEntry
	Kind   MatchKind
	// Distance is the fuzzy score of the accepted candidate. Zero for exact matches.
	Distance int
	// Duplicate marks a record whose employee id already appeared on an earlier record.
	// Such records stay unmatched.
	Duplicate bool
}

// Logical attribute names used as AttributeDiff keys.
const (
	AttrDepartment = "department"
	AttrTitle      = "title"
	AttrManager    = "manager"
	AttrMobile     = "mobile"
	AttrEmployeeID = "employeeId"
	AttrGender     = "gender"
)

// AttributeDiff maps a logical attribute to the value that should replace the directory's.
type AttributeDiff map[string]string

// Has reports whether the diff changes attr.
func (d AttributeDiff) Has(attr string) bool {
	_, ok := d[attr]
	return ok
}

// ActionType is the audit tag of a SyncResult.
type ActionType string

const (
	// ActionTest marks a diff computed in dry-run mode.
	ActionTest ActionType = "Test"
	// ActionUpdated marks an applied diff on an exact-key match during a full pass.
	ActionUpdated ActionType = "Updated"
	// ActionIDReassigned marks an applied identity repair on a fuzzy match.
	ActionIDReassigned ActionType = "IDReassigned"
	// ActionAttributeUpdate marks an applied diff during a selected-records pass.
	ActionAttributeUpdate ActionType = "AttributeUpdate"
)

// SyncResult is the audit entry for one pair whose diff was non-empty.
type SyncResult struct {
	EmployeeID  string `json:"employee_id"`
	FullName    string `json:"full_name"`
	AccountName string `json:"account_name"`
	EntryPath   string `json:"entry_path"`
	// Current holds the directory values of the diffed attributes before the change.
	Current AttributeDiff `json:"current"`
	Diff    AttributeDiff `json:"diff"`
	Action  ActionType    `json:"action"`
	Match   MatchKind     `json:"match"`
	// FuzzyDistance is set when the identity was guessed from the display name.
	FuzzyDistance int `json:"fuzzy_distance,omitempty"`
	// Relocated holds the new parent path when the entry was (or would be) moved.
	Relocated string `json:"relocated,omitempty"`
}

// SyncFailure records a record that was skipped because of a recoverable error.
type SyncFailure struct {
	EmployeeID string `json:"employee_id"`
	Stage      string `json:"stage"`
	Error      string `json:"error"`
}

// Summary provides aggregate counts for a pass.
type Summary struct {
	SourceRecords    int `json:"source_records"`
	DirectoryEntries int `json:"directory_entries"`
	InScope          int `json:"in_scope"`
	ExactMatches     int `json:"exact_matches"`
	FuzzyMatches     int `json:"fuzzy_matches"`
	Unmatched        int `json:"unmatched"`
	Changed          int `json:"changed"`
	Failed           int `json:"failed"`
}

// SyncReport is the complete audit output of one pass.
type SyncReport struct {
	RunID      string        `json:"run_id"`
	Test       bool          `json:"test"`
	Results    []SyncResult  `json:"results"`
	Failures   []SyncFailure `json:"failures,omitempty"`
	Summary    Summary       `json:"summary"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Options controls one reconciliation pass.
type Options struct {
	// TestOnly computes and reports diffs without any directory write.
	TestOnly bool

	// EmployeeIDs restricts the pass to these ids. Nil means the full population.
	// Unknown ids are skipped silently.
	EmployeeIDs []string

	// Selected tags applied results as AttributeUpdate instead of Updated.
	Selected bool
}
