package folkweb

import (
	"regexp"
	"strconv"
	"strings"
)

// ResultType classifies a search hit by what kind of page it points at.
type ResultType string

// Search hit classifications.
const (
	TypePage        ResultType = "page"
	TypeArtist      ResultType = "artist"
	TypeArtistAlbum ResultType = "artist/album"
	TypeChildBallad ResultType = "Child Ballad"
	TypeLawsIndex   ResultType = "Laws Index"
)

// SearchResult is one link whose visible text matched a search query.
type SearchResult struct {
	Text string
	Path string
	Type ResultType
}

// BalladEntry is one Child ballad from the ballad index. Number may carry a
// variant letter suffix (e.g. "39A").
type BalladEntry struct {
	Number string
	Title  string
	Path   string
}

// LawsEntry is one entry from the Laws index, identified by a letter+digits
// code (e.g. "L1").
type LawsEntry struct {
	Code  string
	Title string
	Path  string
}

// DiscographyEntry is one record linked from an artist page. Year is a
// 4-digit string when the link text carried one, empty otherwise.
type DiscographyEntry struct {
	Title string
	Year  string
	Path  string
}

// Article is the readable text extracted from one page.
type Article struct {
	Title      string
	Body       string
	Recordings []string
}

// Discography is the biography and record list extracted from an artist page.
type Discography struct {
	Bio     string
	Entries []DiscographyEntry
}

// RecordLabel is one entry in the curated label list.
type RecordLabel struct {
	Name        string
	Description string
	Path        string
}

// balladRangePattern matches a numeric range filter such as "12-40".
var balladRangePattern = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)

// FilterBallads returns the entries matching filter. A "start-end" filter
// compares the leading integer of each ballad number against the inclusive
// range (a variant letter suffix is display-only and ignored here). Any
// other non-empty filter matches case-insensitively as a substring of the
// title or as a prefix of the number string.
func FilterBallads(entries []BalladEntry, filter string) []BalladEntry {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return entries
	}

	if m := balladRangePattern.FindStringSubmatch(filter); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		var out []BalladEntry
		for _, e := range entries {
			n, ok := leadingInt(e.Number)
			if ok && n >= lo && n <= hi {
				out = append(out, e)
			}
		}
		return out
	}

	needle := strings.ToLower(filter)
	var out []BalladEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.HasPrefix(strings.ToLower(e.Number), needle) {
			out = append(out, e)
		}
	}
	return out
}

// FilterLaws returns the entries matching filter: a case-insensitive prefix
// match on the code, falling back to a substring match on the title only
// when no code matched. The fallback is not a per-entry OR; a bare "l"
// filter must select the L codes, not every title containing an l.
func FilterLaws(entries []LawsEntry, filter string) []LawsEntry {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return entries
	}

	prefix := strings.ToUpper(filter)
	var out []LawsEntry
	for _, e := range entries {
		if strings.HasPrefix(strings.ToUpper(e.Code), prefix) {
			out = append(out, e)
		}
	}
	if len(out) > 0 {
		return out
	}

	needle := strings.ToLower(filter)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), needle) {
			out = append(out, e)
		}
	}
	return out
}

// leadingInt parses the leading run of digits in s.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
