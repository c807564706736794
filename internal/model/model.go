package model

const (
	// ParseStatePending marks a raw name waiting to be parsed.
	ParseStatePending = "pending"
	// ParseStateParsed marks a record whose components have been filled in.
	ParseStateParsed = "parsed"
	// ParseStateFailed marks a record the parser rejected; ParseError holds
	// the cause.
	ParseStateFailed = "failed"
)

// NameRecord is one staged name in name_record_tab.
type NameRecord struct {
	ID             int64  `json:"id"`
	RawName        string `json:"raw_name"`
	AcademicTitle  string `json:"academic_title,omitempty"`
	LeadingInitial string `json:"leading_initial,omitempty"`
	FirstName      string `json:"first_name,omitempty"`
	MiddleName     string `json:"middle_name,omitempty"`
	Nickname       string `json:"nickname,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Suffix         string `json:"suffix,omitempty"`
	SortKey        string `json:"sort_key,omitempty"`
	ParseState     string `json:"parse_state"`
	ParseError     string `json:"parse_error,omitempty"`
	CreateTime     int64  `json:"create_time"`
	UpdateTime     int64  `json:"update_time"`
}
