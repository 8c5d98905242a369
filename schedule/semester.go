package schedule

import "regexp"

// semesterRE matches the semester marker printed above each page's table.
// Spacing includes Unicode separators such as the no-break space.
var semesterRE = regexp.MustCompile(`ΕΞΑΜΗΝΟ[\s\p{Z}]*(\p{Nd}+)`)

// ExtractSemester returns the number following the first semester marker
// in text, or "" when there is none.
func ExtractSemester(text string) string {
	m := semesterRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}
