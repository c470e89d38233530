package folkweb

import (
	"fmt"
	"strings"
)

// FormatSearchResults renders search hits as a text payload, one hit per
// block in the form "[type] **text**\n  → path". An empty hit list renders
// a readable no-results message rather than an error.
func FormatSearchResults(results []SearchResult, query string) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results found for %q. Try a song title, artist name, or ballad number.", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s) for %q:\n\n", len(results), query)
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] **%s**\n  → %s\n", r.Type, r.Text, r.Path)
	}
	return b.String()
}

// FormatBallads renders ballad index entries as "**Child N**: title" blocks.
func FormatBallads(entries []BalladEntry, filter string) string {
	if len(entries) == 0 {
		if filter == "" {
			return "No Child ballads found in the index."
		}
		return fmt.Sprintf("No Child ballads matched %q.", filter)
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "**Child %s**: %s\n → %s\n", e.Number, e.Title, e.Path)
	}
	return b.String()
}

// FormatLaws renders Laws index entries in the same shape as FormatBallads.
func FormatLaws(entries []LawsEntry, filter string) string {
	if len(entries) == 0 {
		if filter == "" {
			return "No Laws index entries found."
		}
		return fmt.Sprintf("No Laws index entries matched %q.", filter)
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "**Laws %s**: %s\n → %s\n", e.Code, e.Title, e.Path)
	}
	return b.String()
}

// FormatArticle renders a page as a title heading, the article body, and a
// "## Recordings" section. The recordings section is omitted entirely when
// no related recordings were found.
func FormatArticle(a *Article) string {
	var b strings.Builder
	b.WriteString("# " + a.Title)
	if a.Body != "" {
		b.WriteString("\n\n" + a.Body)
	}
	if len(a.Recordings) > 0 {
		b.WriteString("\n\n## Recordings\n")
		for _, r := range a.Recordings {
			b.WriteString("- " + r + "\n")
		}
	}
	return b.String()
}

// FormatDiscography renders an artist page as a name heading, the short
// biography, and the record list.
func FormatDiscography(name string, d *Discography) string {
	var b strings.Builder
	b.WriteString("# " + name)
	if d.Bio != "" {
		b.WriteString("\n\n" + d.Bio)
	}
	if len(d.Entries) == 0 {
		b.WriteString("\n\nNo records found on this page.")
		return b.String()
	}
	b.WriteString("\n\n## Discography\n")
	for _, e := range d.Entries {
		title := e.Title
		if e.Year != "" {
			title += " (" + e.Year + ")"
		}
		fmt.Fprintf(&b, "- %s\n  → %s\n", title, e.Path)
	}
	return b.String()
}

// FormatLabels renders the curated record label list.
func FormatLabels(labels []RecordLabel) string {
	var b strings.Builder
	b.WriteString("Known folk record labels:\n\n")
	for _, l := range labels {
		fmt.Fprintf(&b, "**%s**: %s\n → %s\n", l.Name, l.Description, l.Path)
	}
	return b.String()
}
