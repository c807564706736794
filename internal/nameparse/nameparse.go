package nameparse

import (
	"fmt"
	"regexp"
	"strings"
)

// Parser splits free-form human-name strings into structured components. The
// word-list patterns are compiled once at construction; a Parser is safe for
// concurrent Parse calls as long as the lists are not replaced mid-flight
// (callers needing concurrent reconfiguration must synchronize externally).
type Parser struct {
	cfg *Config

	combinedTitleRegexp *regexp.Regexp
	trailingTitleRegexp *regexp.Regexp
	titleRegexp         *regexp.Regexp
	nicknameRegexp      *regexp.Regexp
	suffixRegexp        *regexp.Regexp
	lastNameRegexp      *regexp.Regexp
	leadingInitRegexp   *regexp.Regexp
	firstNameRegexp     *regexp.Regexp
}

// New builds a parser from cfg. A nil cfg selects DefaultConfig. The config
// is copied; later changes to the caller's slices have no effect.
func New(cfg *Config) *Parser {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &Parser{cfg: cfg.clone()}
	p.compile()
	return p
}

// SetSuffixes replaces the suffix list and recompiles the patterns. Takes
// effect for subsequent Parse calls only.
func (p *Parser) SetSuffixes(list []string) {
	p.cfg.Suffixes = append([]string(nil), list...)
	p.compile()
}

// SetPrefixes replaces the surname-prefix list and recompiles the patterns.
func (p *Parser) SetPrefixes(list []string) {
	p.cfg.Prefixes = append([]string(nil), list...)
	p.compile()
}

// SetAcademicTitles replaces the title list and recompiles the patterns.
func (p *Parser) SetAcademicTitles(list []string) {
	p.cfg.AcademicTitles = append([]string(nil), list...)
	p.compile()
}

func (p *Parser) compile() {
	suffixes := dottedAlternation(p.cfg.Suffixes)
	titles := dottedAlternation(p.cfg.AcademicTitles)
	prefixes := spacedAlternation(p.cfg.Prefixes)

	p.combinedTitleRegexp = regexp.MustCompile(`(?i)^(mrs?\.?\s*/\s*ms\.?)`)
	p.trailingTitleRegexp = regexp.MustCompile(`(?i)\b(` + titles + `)$`)
	p.titleRegexp = regexp.MustCompile(`(?i)(?:^|\s)(` + titles + `)(?:\s|$)`)
	p.nicknameRegexp = regexp.MustCompile(` ('|"|\("*'*)(.+?)('|"|"*'*\)) `)
	p.suffixRegexp = regexp.MustCompile(`(?i)(?:,|\s)+(` + suffixes + `)(?:,+|\b|$)`)
	p.lastNameRegexp = regexp.MustCompile(`(?i) ((?:\S+ y |` + prefixes + `)*\S+)$`)
	p.leadingInitRegexp = regexp.MustCompile(`^(.\.*)\s+\pL\pL`)
	p.firstNameRegexp = regexp.MustCompile(`^\S+`)
}

// neverMatch keeps an alternation built from an empty list from matching the
// empty string everywhere.
const neverMatch = `[^\s\S]`

// dottedAlternation joins list entries into a regexp alternation, appending
// an optional-trailing-dots quantifier to each entry so "jr" also matches
// "Jr." in-string.
func dottedAlternation(entries []string) string {
	quoted := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(entry)+`\.*`)
	}
	if len(quoted) == 0 {
		return neverMatch
	}
	return strings.Join(quoted, "|")
}

// spacedAlternation joins prefix entries into a regexp alternation, appending
// a mandatory trailing space to each entry so "van" only matches as the whole
// word "van " and never as the head of another token.
func spacedAlternation(entries []string) string {
	quoted := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(entry)+` `)
	}
	if len(quoted) == 0 {
		return neverMatch
	}
	return strings.Join(quoted, "|")
}

// Parse runs the extraction stages over raw and returns the populated record.
// On error no partial record is returned. See the package documentation for
// the stage order.
func (p *Parser) Parse(raw string) (*Name, error) {
	name := &Name{}
	working := normalize(raw)

	// Leading combined "Mrs. / Ms." salutation. Stripped without
	// renormalizing so the slash flip below still sees the spacing.
	if m := p.combinedTitleRegexp.FindStringSubmatchIndex(working); m != nil {
		name.AcademicTitle = strings.TrimSpace(working[m[2]:m[3]])
		working = working[:m[0]] + " " + working[m[1]:]
	}

	working = flipNameToken(working, "/", slashFlips)

	// A title at the very end marks a "Last First [Middle] Title" order:
	// strip it, then flip the remaining tokens back to natural order.
	if name.AcademicTitle == "" {
		title, rest, err := chop(working, p.trailingTitleRegexp, 1)
		if err != nil {
			return nil, fmt.Errorf("strip trailing title: %w", err)
		}
		if title != "" {
			name.AcademicTitle = strings.TrimRight(title, ".")
			working = flipNameToken(rest, " ", spaceFlips)
		}
	}

	if name.AcademicTitle == "" {
		title, rest, err := chop(working, p.titleRegexp, 1)
		if err != nil {
			return nil, fmt.Errorf("strip title: %w", err)
		}
		if title != "" {
			name.AcademicTitle = strings.TrimRight(title, ".")
			working = rest
		}
	}

	nick, rest, err := chop(working, p.nicknameRegexp, 2)
	if err != nil {
		return nil, fmt.Errorf("strip nickname: %w", err)
	}
	if nick != "" {
		name.Nickname = nick
		working = rest
	}

	suffix, rest, err := chop(working, p.suffixRegexp, 1)
	if err != nil {
		return nil, fmt.Errorf("strip suffix: %w", err)
	}
	if suffix != "" {
		name.Suffix = strings.TrimRight(suffix, ".")
		working = rest
	}

	working = flipNameToken(working, ",", commaFlips)

	last, rest, err := chop(working, p.lastNameRegexp, 1)
	if err != nil {
		return nil, fmt.Errorf("strip last name: %w", err)
	}
	if last == "" {
		if !p.cfg.OptionalLastName {
			return nil, fmt.Errorf("parse %q: %w", raw, ErrLastNameNotFound)
		}
	} else {
		name.LastName = last
		working = rest
	}

	// Leading initial. Only the initial itself is consumed; the two-letter
	// word that qualifies it stays in place for the first-name stage.
	if m := p.leadingInitRegexp.FindStringSubmatchIndex(working); m != nil {
		name.LeadingInitial = strings.TrimRight(working[m[2]:m[3]], ".")
		working = normalize(working[m[3]:])
	}

	if loc := p.firstNameRegexp.FindStringIndex(working); loc != nil {
		name.FirstName = working[loc[0]:loc[1]]
		working = normalize(working[loc[1]:])
	} else if !p.cfg.OptionalFirstName {
		return nil, fmt.Errorf("parse %q: %w", raw, ErrFirstNameNotFound)
	}

	if working != "" {
		name.MiddleName = working
	}

	return name, nil
}

// chop removes the single occurrence of re from s, replacing the matched span
// with one space, and returns the requested capture group plus the normalized
// remainder. More than one occurrence violates the one-occurrence contract of
// these strips and fails with ErrAmbiguousMatch.
func chop(s string, re *regexp.Regexp, group int) (string, string, error) {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return "", s, nil
	}
	if len(matches) > 1 {
		return "", s, fmt.Errorf("%d occurrences in %q: %w", len(matches), s, ErrAmbiguousMatch)
	}
	m := matches[0]
	captured := ""
	if m[2*group] >= 0 {
		captured = s[m[2*group]:m[2*group+1]]
	}
	rest := normalize(s[:m[0]] + " " + s[m[1]:])
	return captured, rest, nil
}
