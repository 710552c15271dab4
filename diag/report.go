package diag

import "strings"

// Report renders each error as its canonical description line, in order.
//
// Returns nil for an empty error list.
func Report(errs []ValidationError) []string {
	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Description
	}
	return lines
}

// ReportString renders the errors as a single newline-joined block.
func ReportString(errs []ValidationError) string {
	return strings.Join(Report(errs), "\n")
}
