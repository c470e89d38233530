package goquery

import "regexp"

// Named extraction rules for the text patterns the site embeds in free-form
// prose. The markup is not a schema; when a pattern is absent the list item
// is silently skipped rather than reported. Keeping the patterns here, named
// and individually tested, isolates site drift to one rule at a time.
var (
	// childRefRule matches a Child ballad reference such as "Child 39" or
	// "Child 39A" inside a list item's text (commonly "(Roud 35; Child 39A)").
	// The optional trailing letter is a variant suffix.
	childRefRule = regexp.MustCompile(`Child\s+(\d+[A-Za-z]?)`)

	// lawsRefRule matches a Laws reference such as "Laws L1": one letter
	// followed by digits. Codes are normalized to upper case.
	lawsRefRule = regexp.MustCompile(`Laws\s+([A-Za-z]\d+)`)

	// yearRule matches a parenthesized 4-digit release year in link text,
	// e.g. "The Time Has Come (1971)".
	yearRule = regexp.MustCompile(`\((\d{4})\)`)
)
