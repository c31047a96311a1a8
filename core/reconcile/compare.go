package reconcile

import "context"

// ComparisonRow joins one source record with its matched entry for side-by-side review.
type ComparisonRow struct {
	EmployeeID       string
	FullName         string
	Match            MatchKind
	AccountName      string
	EntryPath        string
	SourceDepartment string
	EntryDepartment  string
	SourceTitle      string
	EntryTitle       string
	SourceMobile     string
	EntryMobile      string
	Supervisor       string
	EntryManager     string
	// Pending lists the attributes a pass would change, manager excluded.
	Pending []string
}

// Compare extracts both populations and joins them without writing anything.
// Manager paths are not resolved, so Pending never contains AttrManager.
func Compare(ctx context.Context, spec *Spec) ([]ComparisonRow, error) {
	records, entries, err := extract(ctx, spec)
	if err != nil {
		return nil, err
	}

	matcher := NewMatcher(spec.Config.FuzzyMaxDistance)
	if spec.Scorer != nil {
		matcher.Scorer = spec.Scorer
	}
	differ := Differ{CaseInsensitive: spec.Config.CaseInsensitive}

	pairs := matcher.Match(records, entries)
	rows := make([]ComparisonRow, 0, len(pairs))
	for _, pair := range pairs {
		row := ComparisonRow{
			EmployeeID:       pair.Source.EmployeeID,
			FullName:         pair.Source.FullName,
			Match:            pair.Kind,
			SourceDepartment: pair.Source.Department,
			SourceTitle:      pair.Source.PositionTitle,
			SourceMobile:     pair.Source.PhoneNumber,
			Supervisor:       pair.Source.SupervisorEmployeeID,
		}
		if mobile, ok := NormalizePhone(pair.Source.PhoneNumber); ok {
			row.SourceMobile = mobile
		}

		if pair.Entry != nil {
			row.AccountName = pair.Entry.AccountName
			row.EntryPath = pair.Entry.UniquePath
			row.EntryDepartment = pair.Entry.Department
			row.EntryTitle = pair.Entry.Title
			row.EntryMobile = pair.Entry.Mobile
			row.EntryManager = pair.Entry.ManagerReference

			diff, _ := differ.Diff(pair, "")
			row.Pending = pendingAttributes(diff)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

var attributeOrder = []string{AttrDepartment, AttrTitle, AttrManager, AttrMobile, AttrEmployeeID, AttrGender}

func pendingAttributes(diff AttributeDiff) []string {
	var attrs []string
	for _, attr := range attributeOrder {
		if diff.Has(attr) {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}
