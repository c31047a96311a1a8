package reconcile

import "strings"

// Differ computes the attribute changes that bring an entry in line with its source record.
type Differ struct {
	CaseInsensitive bool
}

// Diff returns the changes for pair and the directory values they replace.
// managerPath is the resolved path of the record's supervisor, or empty when it could
// not be resolved. Both maps are empty when the entry is already in sync.
func (d Differ) Diff(pair MatchedPair, managerPath string) (diff, current AttributeDiff) {
	diff, current = AttributeDiff{}, AttributeDiff{}
	if pair.Entry == nil || pair.Kind == MatchUnmatched {
		return diff, current
	}

	src, entry := pair.Source, pair.Entry
	set := func(attr, value, was string) {
		diff[attr] = value
		current[attr] = was
	}

	if src.Department != "" && !d.equal(src.Department, entry.Department) {
		set(AttrDepartment, src.Department, entry.Department)
	}

	if src.PositionTitle != "" && !d.equal(src.PositionTitle, entry.Title) {
		set(AttrTitle, src.PositionTitle, entry.Title)
	}

	// paths are case-insensitive on the directory side
	if managerPath != "" && !strings.EqualFold(managerPath, entry.ManagerReference) {
		set(AttrManager, managerPath, entry.ManagerReference)
	}

	if mobile, ok := NormalizePhone(src.PhoneNumber); ok && mobile != normalizeStoredMobile(entry.Mobile) {
		set(AttrMobile, mobile, entry.Mobile)
	}

	if pair.Kind == MatchFuzzyName {
		if ValidEmployeeID(src.EmployeeID) && src.EmployeeID != entry.EmployeeID {
			set(AttrEmployeeID, src.EmployeeID, entry.EmployeeID)
		}
		if src.Gender != "" && src.Gender != entry.Gender {
			set(AttrGender, src.Gender, entry.Gender)
		}
	}

	return diff, current
}

func (d Differ) equal(a, b string) bool {
	if d.CaseInsensitive {
		return foldValue(a) == foldValue(b)
	}
	return a == b
}
