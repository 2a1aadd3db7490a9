package nav

import "strings"

// Entry is one navigation link. Icon is a resource reference resolved by
// the view layer.
type Entry struct {
	Label string
	Href  string
	Icon  string
}

// Section groups an ordered run of entries under a title.
type Section struct {
	Title   string
	Entries []Entry
}

// matches reports whether href owns currentPath: an exact hit, or any path
// nested under href.
func matches(currentPath, href string) bool {
	if currentPath == href {
		return true
	}
	return strings.HasPrefix(currentPath, href+"/")
}

// ResolveActive picks the single entry to highlight for currentPath: the
// matching entry with the longest href. With hrefs that are prefixes of one
// another only the most specific one lights up. No match returns ok=false.
//
// Length ties are undefined by contract (well-formed menus have pairwise
// distinct hrefs); the first longest match in entry order is kept so the
// result is at least deterministic.
func ResolveActive(currentPath string, entries []Entry) (Entry, bool) {
	var (
		best  Entry
		found bool
	)
	for _, e := range entries {
		if !matches(currentPath, e.Href) {
			continue
		}
		if !found || len(e.Href) > len(best.Href) {
			best = e
			found = true
		}
	}
	return best, found
}

// ActiveHref resolves across a whole menu by flattening its sections. The
// specificity rule is global: an entry in one section can shadow a shorter
// match in another.
func ActiveHref(currentPath string, sections []Section) (Entry, bool) {
	var flat []Entry
	for _, s := range sections {
		flat = append(flat, s.Entries...)
	}
	return ResolveActive(currentPath, flat)
}
