package nameparse

// Config carries the word lists and field requirements a Parser is compiled
// from. All list entries are matched case-insensitively; they should be given
// in lowercase.
type Config struct {
	// Suffixes are generational/professional suffixes matched at the end
	// of the name ("jr", "phd", ...).
	Suffixes []string
	// Prefixes are surname particles absorbed into the last name
	// ("van", "de la", ...). Multi-word entries are allowed.
	Prefixes []string
	// AcademicTitles are salutations and titles stripped from the name
	// ("mr", "dr", "herr", ...).
	AcademicTitles []string
	// OptionalFirstName and OptionalLastName turn the corresponding
	// not-found errors into absent fields.
	OptionalFirstName bool
	OptionalLastName  bool
}

var (
	defaultSuffixes = []string{
		"esq", "jr", "sr", "ii", "iii", "iv", "v", "md", "phd",
		"(child)", "child",
	}
	defaultPrefixes = []string{
		"bar", "ben", "bin", "da", "dal", "de la", "de", "del",
		"della", "der", "di", "ibn", "la", "le", "san", "st", "ste",
		"van der", "van den", "van", "vel", "von",
	}
	defaultAcademicTitles = []string{
		"mr", "mrs", "ms", "miss", "dr", "prof", "herr", "frau",
		"sr", "sra", "srta",
	}
)

// DefaultConfig returns a fresh config with the stock word lists and both
// first and last name mandatory.
func DefaultConfig() *Config {
	return &Config{
		Suffixes:       append([]string(nil), defaultSuffixes...),
		Prefixes:       append([]string(nil), defaultPrefixes...),
		AcademicTitles: append([]string(nil), defaultAcademicTitles...),
	}
}

func (c *Config) clone() *Config {
	out := *c
	out.Suffixes = append([]string(nil), c.Suffixes...)
	out.Prefixes = append([]string(nil), c.Prefixes...)
	out.AcademicTitles = append([]string(nil), c.AcademicTitles...)
	return &out
}
