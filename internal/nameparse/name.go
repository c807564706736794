package nameparse

import "strings"

// Name holds the components extracted from a raw name string. An empty field
// means the component was absent from the input.
type Name struct {
	AcademicTitle  string `json:"academic_title,omitempty"`
	LeadingInitial string `json:"leading_initial,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	MiddleName     string `json:"middle_name,omitempty"`
	Nickname       string `json:"nickname,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Suffix         string `json:"suffix,omitempty"`
}

// String reassembles the non-empty components in natural order. The nickname
// is left out, matching how the name would be written without it.
func (n *Name) String() string {
	parts := []string{
		n.AcademicTitle,
		n.LeadingInitial,
		n.FirstName,
		n.MiddleName,
		n.LastName,
		n.Suffix,
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}
