// Package nameparse splits a single free-form human-name string into its
// components: academic title, leading initial, first name, middle name(s),
// nickname, last name and suffix.
//
// Parsing is a fixed sequence of pattern strips over one shrinking working
// string, in this order: leading "Mrs. / Ms." salutation, slash inversion
// ("Last / First"), trailing title with a follow-up token flip, title
// anywhere, quoted or parenthesized nickname, trailing suffix, comma
// inversion ("Last, First[, Middle]"), last name (extended left across
// surname prefixes and the conjunction "y"), leading initial, first name,
// and finally whatever remains as the middle name. Each strip replaces its
// match with a space and renormalizes, so later stages only ever see the
// still-unclassified remainder.
//
// The rules are deliberately deterministic: genuinely ambiguous names are not
// resolved, they are parsed by the same fixed tie-breaking every time.
package nameparse
