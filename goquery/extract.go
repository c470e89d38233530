// Package goquery implements the document extractors over parsed HTML.
// Each extractor is a pure function of a page body (plus the page's own
// site path for link resolution); none performs I/O. The site's markup is
// loosely structured, so extraction is heuristic: an element that doesn't
// match is skipped, never an error.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mpickford/folkweb"
)

// Extraction limits. The body cap protects downstream consumers from
// unbounded payloads at the cost of occasionally cutting long lyric or
// discography pages short.
const (
	maxArticleRunes  = 6000
	maxRecordings    = 30
	minBlockRunes    = 20
	minBioRunes      = 50
	maxBioParagraphs = 4
)

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, folkweb.Errorf(folkweb.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// isNonHTTPLink reports whether href is a javascript:, mailto:, tel:, or
// pure-fragment link that can never resolve to a site page.
func isNonHTTPLink(href string) bool {
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "#")
}

// ExtractSearchHits returns every hyperlink whose visible text contains
// query, case-insensitively. basePath is the fetched document's own site
// path, used to resolve relative hrefs; defaultType classifies hits from
// this document when no override applies.
//
// Classification precedence: a resolved path containing "records/" is an
// artist/album hit; otherwise a raw href starting with "../" is an artist
// hit. The artist/album check runs first against the resolved path and is
// not re-checked, so it wins when both conditions hold.
//
// The caller merges hit lists from multiple documents, de-duplicates by
// resolved path, and caps the total.
func ExtractSearchHits(html, basePath, query string, defaultType folkweb.ResultType) ([]folkweb.SearchResult, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	var hits []folkweb.SearchResult

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || isNonHTTPLink(href) {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if text == "" || !strings.Contains(strings.ToLower(text), needle) {
			return
		}

		resolved := folkweb.ResolvePath(href, basePath)

		typ := defaultType
		if strings.Contains(resolved, "records/") {
			typ = folkweb.TypeArtistAlbum
		} else if strings.HasPrefix(href, "../") {
			typ = folkweb.TypeArtist
		}

		hits = append(hits, folkweb.SearchResult{
			Text: text,
			Path: resolved,
			Type: typ,
		})
	})

	return hits, nil
}

// ExtractBalladEntries returns one entry per list item that carries both a
// hyperlink and a Child reference in its text. The first hyperlink supplies
// title and path; items without a link or a parseable reference are
// skipped.
func ExtractBalladEntries(html, basePath string) ([]folkweb.BalladEntry, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var entries []folkweb.BalladEntry

	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a[href]").First()
		if link.Length() == 0 {
			return
		}
		m := childRefRule.FindStringSubmatch(sel.Text())
		if m == nil {
			return
		}
		href, _ := link.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		entries = append(entries, folkweb.BalladEntry{
			Number: strings.ToUpper(m[1]),
			Title:  strings.TrimSpace(link.Text()),
			Path:   folkweb.ResolvePath(href, basePath),
		})
	})

	return entries, nil
}

// ExtractLawsEntries is the Laws-index counterpart of ExtractBalladEntries:
// same list-item structure, but the text pattern is a letter+digits code.
func ExtractLawsEntries(html, basePath string) ([]folkweb.LawsEntry, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	var entries []folkweb.LawsEntry

	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find("a[href]").First()
		if link.Length() == 0 {
			return
		}
		m := lawsRefRule.FindStringSubmatch(sel.Text())
		if m == nil {
			return
		}
		href, _ := link.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		entries = append(entries, folkweb.LawsEntry{
			Code:  strings.ToUpper(m[1]),
			Title: strings.TrimSpace(link.Text()),
			Path:  folkweb.ResolvePath(href, basePath),
		})
	})

	return entries, nil
}

// ExtractArticle assembles the readable text of a page: paragraphs, list
// items, and h2/h3 headings longer than 20 trimmed characters, in document
// order, with headings rendered as markdown sections; preformatted blocks
// (song lyrics) are appended verbatim inside fences. The body is capped at
// 6000 characters. Link texts targeting "records/" pages are collected
// separately as related recordings, de-duplicated and capped at 30.
func ExtractArticle(html string) (*folkweb.Article, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	var blocks []string

	doc.Find("p, li, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len([]rune(text)) <= minBlockRunes {
			return
		}
		switch goquery.NodeName(sel) {
		case "h2":
			blocks = append(blocks, "## "+text)
		case "h3":
			blocks = append(blocks, "### "+text)
		default:
			blocks = append(blocks, text)
		}
	})

	doc.Find("pre").Each(func(_ int, sel *goquery.Selection) {
		text := strings.Trim(sel.Text(), "\n")
		if text == "" {
			return
		}
		blocks = append(blocks, "```\n"+text+"\n```")
	})

	body := strings.Join(blocks, "\n\n")
	if r := []rune(body); len(r) > maxArticleRunes {
		body = string(r[:maxArticleRunes])
	}

	seen := make(map[string]bool)
	var recordings []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if len(recordings) >= maxRecordings {
			return
		}
		href, _ := sel.Attr("href")
		if !strings.Contains(href, "records/") {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" || seen[text] {
			return
		}
		seen[text] = true
		recordings = append(recordings, text)
	})

	return &folkweb.Article{
		Title:      title,
		Body:       body,
		Recordings: recordings,
	}, nil
}

// ExtractDiscography collects the record list and short biography from an
// artist page. A link counts as a record when its resolved target contains
// "records/" or ends in a page extension; an optional parenthesized year is
// lifted out of the link text. Entries are de-duplicated by resolved path,
// last seen wins. The biography is the first four paragraphs longer than
// 50 trimmed characters.
func ExtractDiscography(html, basePath string) (*folkweb.Discography, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int)
	var entries []folkweb.DiscographyEntry

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}

		resolved := folkweb.ResolvePath(href, basePath)
		if !strings.Contains(resolved, "records/") &&
			!strings.HasSuffix(resolved, ".html") &&
			!strings.HasSuffix(resolved, ".htm") {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}

		year := ""
		if m := yearRule.FindStringSubmatch(text); m != nil {
			year = m[1]
			text = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
		}

		entry := folkweb.DiscographyEntry{
			Title: text,
			Year:  year,
			Path:  resolved,
		}

		if idx, ok := seen[resolved]; ok {
			entries[idx] = entry
		} else {
			seen[resolved] = len(entries)
			entries = append(entries, entry)
		}
	})

	var bio []string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len([]rune(text)) > minBioRunes {
			bio = append(bio, text)
		}
		return len(bio) < maxBioParagraphs
	})

	return &folkweb.Discography{
		Bio:     strings.Join(bio, "\n\n"),
		Entries: entries,
	}, nil
}
