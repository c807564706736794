package nameparse

import "strings"

// flipRule reorders the pieces of a delimiter split. A rule applies only when
// the delimiter occurs exactly Delims times; Order lists the piece indexes in
// output position order and must be a permutation of 0..Delims.
type flipRule struct {
	Delims int
	Order  []int
}

var (
	// "Title / Last / First" and "Last / First".
	slashFlips = []flipRule{
		{Delims: 2, Order: []int{0, 2, 1}},
		{Delims: 1, Order: []int{1, 0}},
	}
	// "Last First Middle" and "Last First", used after a trailing title
	// has been stripped.
	spaceFlips = []flipRule{
		{Delims: 2, Order: []int{1, 2, 0}},
		{Delims: 1, Order: []int{1, 0}},
	}
	// "Last, First, Middle" and "Last, First".
	commaFlips = []flipRule{
		{Delims: 2, Order: []int{1, 2, 0}},
		{Delims: 1, Order: []int{1, 0}},
	}
)

// flipNameToken splits s on sep and reorders the pieces according to the
// first rule whose arity matches the actual delimiter count. Each piece is
// normalized individually and the result as a whole. When no rule applies the
// string is returned unchanged.
func flipNameToken(s, sep string, rules []flipRule) string {
	count := strings.Count(s, sep)
	for _, rule := range rules {
		if count != rule.Delims {
			continue
		}
		pieces := strings.Split(s, sep)
		out := make([]string, 0, len(pieces))
		for _, idx := range rule.Order {
			out = append(out, normalize(pieces[idx]))
		}
		return normalize(strings.Join(out, " "))
	}
	return s
}
