package goquery_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mpickford/folkweb"
	"github.com/mpickford/folkweb/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSearchHits(t *testing.T) {
	t.Parallel()

	t.Run("matches link text case-insensitively as a substring", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/folk/songs/reynardine.html">Reynardine</a>
<a href="/folk/songs/tamlin.html">Tam Lin</a>
</body></html>`

		hits, err := goquery.ExtractSearchHits(html, "/", "REYNard", folkweb.TypePage)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "Reynardine", hits[0].Text)
		assert.Equal(t, "/folk/songs/reynardine.html", hits[0].Path)
		assert.Equal(t, folkweb.TypePage, hits[0].Type)
	})

	t.Run("resolves relative hrefs against the document path", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="songs/reynardine.html">Reynardine</a></body></html>`

		hits, err := goquery.ExtractSearchHits(html, "/folk/index.html", "reynardine", folkweb.TypePage)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "/folk/songs/reynardine.html", hits[0].Path)
	})

	t.Run("classifies records/ targets as artist/album", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="records/annebriggs.html">Anne Briggs</a></body></html>`

		hits, err := goquery.ExtractSearchHits(html, "/folk/", "anne", folkweb.TypePage)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, folkweb.TypeArtistAlbum, hits[0].Type)
	})

	t.Run("classifies parent-relative hrefs as artist", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="../briggs.html">Anne Briggs</a></body></html>`

		hits, err := goquery.ExtractSearchHits(html, "/folk/songs/", "briggs", folkweb.TypePage)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, folkweb.TypeArtist, hits[0].Type)
		assert.Equal(t, "/folk/briggs.html", hits[0].Path)
	})

	t.Run("artist/album wins when both conditions hold", func(t *testing.T) {
		t.Parallel()

		// Raw href starts with "../" AND the resolved path contains records/.
		html := `<html><body><a href="../records/thetimehascome.html">The Time Has Come</a></body></html>`

		hits, err := goquery.ExtractSearchHits(html, "/folk/songs/", "time", folkweb.TypePage)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, folkweb.TypeArtistAlbum, hits[0].Type)
	})

	t.Run("default type tags hits from index documents", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><li><a href="tamlin.html">Tam Lin</a> (Child 39)</li></body></html>`

		hits, err := goquery.ExtractSearchHits(html, folkweb.BalladIndexPath, "tam", folkweb.TypeChildBallad)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, folkweb.TypeChildBallad, hits[0].Type)
		assert.Equal(t, "/folk/songs/tamlin.html", hits[0].Path)
	})

	t.Run("skips mailto and fragment links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="mailto:ed@example.com">contact the editor</a>
<a href="#top">back to the top</a>
</body></html>`

		hits, err := goquery.ExtractSearchHits(html, "/", "the", folkweb.TypePage)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("no matches yields an empty list, not an error", func(t *testing.T) {
		t.Parallel()

		hits, err := goquery.ExtractSearchHits("<html><body></body></html>", "/", "anything", folkweb.TypePage)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})
}

func TestExtractBalladEntries(t *testing.T) {
	t.Parallel()

	t.Run("extracts number, title and resolved path", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul>
<li><a href="tamlin.html">Tam Lin</a> (Roud 35; Child 39A)</li>
</ul></body></html>`

		entries, err := goquery.ExtractBalladEntries(html, folkweb.BalladIndexPath)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "39A", entries[0].Number)
		assert.Equal(t, "Tam Lin", entries[0].Title)
		assert.Equal(t, "/folk/songs/tamlin.html", entries[0].Path)
	})

	t.Run("skips items without a Child reference", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul>
<li><a href="reynardine.html">Reynardine</a> (Roud 397)</li>
<li><a href="tamlin.html">Tam Lin</a> (Child 39)</li>
</ul></body></html>`

		entries, err := goquery.ExtractBalladEntries(html, "/folk/songs/")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "39", entries[0].Number)
	})

	t.Run("skips items without a hyperlink", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul>
<li>Tam Lin (Child 39) — no page yet</li>
</ul></body></html>`

		entries, err := goquery.ExtractBalladEntries(html, "/folk/songs/")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("uses the first hyperlink in the item", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul>
<li><a href="tamlin.html">Tam Lin</a> (Child 39), see also <a href="youngtamlane.html">Young Tam Lane</a></li>
</ul></body></html>`

		entries, err := goquery.ExtractBalladEntries(html, "/folk/songs/")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Tam Lin", entries[0].Title)
	})
}

func TestExtractLawsEntries(t *testing.T) {
	t.Parallel()

	t.Run("extracts code, title and resolved path", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul>
<li><a href="thecraftyploughboy.html">The Crafty Ploughboy</a> (Roud 399; Laws L1)</li>
</ul></body></html>`

		entries, err := goquery.ExtractLawsEntries(html, folkweb.LawsIndexPath)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "L1", entries[0].Code)
		assert.Equal(t, "The Crafty Ploughboy", entries[0].Title)
		assert.Equal(t, "/folk/songs/thecraftyploughboy.html", entries[0].Path)
	})

	t.Run("normalizes codes to upper case", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul>
<li><a href="x.html">X</a> (Laws q26)</li>
</ul></body></html>`

		entries, err := goquery.ExtractLawsEntries(html, "/folk/songs/")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Q26", entries[0].Code)
	})

	t.Run("skips items without a Laws reference", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><ul>
<li><a href="tamlin.html">Tam Lin</a> (Child 39)</li>
</ul></body></html>`

		entries, err := goquery.ExtractLawsEntries(html, "/folk/songs/")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestExtractArticle(t *testing.T) {
	t.Parallel()

	t.Run("assembles paragraphs, list items and headings in order", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Reynardine</title></head><body>
<h2>Background of the ballad Reynardine</h2>
<p>Reynardine is a ballad about a shape-shifting seducer.</p>
<li>Collected in Ireland and England in the nineteenth century.</li>
<h3>Versions collected from singers</h3>
<p>A. L. Lloyd reworked the words substantially in the 1960s.</p>
</body></html>`

		article, err := goquery.ExtractArticle(html)
		require.NoError(t, err)
		assert.Equal(t, "Reynardine", article.Title)
		assert.Contains(t, article.Body, "## Background of the ballad Reynardine")
		assert.Contains(t, article.Body, "### Versions collected from singers")

		// Document order is preserved.
		h2 := strings.Index(article.Body, "## Background")
		p1 := strings.Index(article.Body, "Reynardine is a ballad")
		h3 := strings.Index(article.Body, "### Versions")
		assert.Less(t, h2, p1)
		assert.Less(t, p1, h3)
	})

	t.Run("drops short boilerplate blocks", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Home</p>
<p>This paragraph is long enough to be kept in the article body.</p>
</body></html>`

		article, err := goquery.ExtractArticle(html)
		require.NoError(t, err)
		assert.NotContains(t, article.Body, "Home")
		assert.Contains(t, article.Body, "long enough")
	})

	t.Run("wraps preformatted lyrics in fences", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Anne Briggs sang Reynardine in 1971 on her eponymous album.</p>
<pre>One evening as I rambled
Among the leaves so green</pre>
</body></html>`

		article, err := goquery.ExtractArticle(html)
		require.NoError(t, err)
		assert.Contains(t, article.Body, "```\nOne evening as I rambled\nAmong the leaves so green\n```")
	})

	t.Run("caps the body at 6000 characters", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 0; i < 200; i++ {
			fmt.Fprintf(&b, "<p>Paragraph %03d of a very long discography page with plenty of text in it.</p>", i)
		}
		b.WriteString("</body></html>")

		article, err := goquery.ExtractArticle(b.String())
		require.NoError(t, err)
		assert.LessOrEqual(t, utf8.RuneCountInString(article.Body), 6000)
		// Truncation removes a suffix only; the start is intact.
		assert.True(t, strings.HasPrefix(article.Body, "Paragraph 000"))
	})

	t.Run("collects deduplicated related recordings capped at 30", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 0; i < 35; i++ {
			fmt.Fprintf(&b, `<a href="../records/album%02d.html">Album %02d</a>`, i, i)
		}
		// Duplicate of the first link text.
		b.WriteString(`<a href="../records/album00.html">Album 00</a>`)
		b.WriteString(`<a href="../about.html">Not a recording</a>`)
		b.WriteString("</body></html>")

		article, err := goquery.ExtractArticle(b.String())
		require.NoError(t, err)
		assert.Len(t, article.Recordings, 30)
		assert.Equal(t, "Album 00", article.Recordings[0])
		assert.NotContains(t, article.Recordings, "Not a recording")
	})

	t.Run("minimal document yields title only", func(t *testing.T) {
		t.Parallel()

		article, err := goquery.ExtractArticle(`<html><head><title>Stub</title></head><body></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Stub", article.Title)
		assert.Empty(t, article.Body)
		assert.Empty(t, article.Recordings)
	})

	t.Run("falls back to h1 when title is missing", func(t *testing.T) {
		t.Parallel()

		article, err := goquery.ExtractArticle(`<html><body><h1>Tam Lin</h1></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Tam Lin", article.Title)
	})
}

func TestExtractDiscography(t *testing.T) {
	t.Parallel()

	t.Run("collects record links with optional year", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Anne Briggs was one of the most influential singers of the 1960s English folk revival.</p>
<a href="records/annebriggs.html">Anne Briggs (1971)</a>
<a href="thetimehascome.html">The Time Has Come</a>
<a href="/folk/images/briggs.jpg">photo</a>
</body></html>`

		d, err := goquery.ExtractDiscography(html, "/folk/briggs.html")
		require.NoError(t, err)
		require.Len(t, d.Entries, 2)

		assert.Equal(t, "Anne Briggs", d.Entries[0].Title)
		assert.Equal(t, "1971", d.Entries[0].Year)
		assert.Equal(t, "/folk/records/annebriggs.html", d.Entries[0].Path)

		assert.Equal(t, "The Time Has Come", d.Entries[1].Title)
		assert.Empty(t, d.Entries[1].Year)
		assert.Equal(t, "/folk/thetimehascome.html", d.Entries[1].Path)
	})

	t.Run("deduplicates by resolved path, last seen wins", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="records/annebriggs.html">Anne Briggs</a>
<a href="records/annebriggs.html">Anne Briggs (1971)</a>
</body></html>`

		d, err := goquery.ExtractDiscography(html, "/folk/briggs.html")
		require.NoError(t, err)
		require.Len(t, d.Entries, 1)
		assert.Equal(t, "1971", d.Entries[0].Year)
	})

	t.Run("biography takes the first four substantial paragraphs", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body><p>short</p>")
		for i := 1; i <= 6; i++ {
			fmt.Fprintf(&b, "<p>Biography paragraph number %d, long enough to pass the fifty character threshold easily.</p>", i)
		}
		b.WriteString("</body></html>")

		d, err := goquery.ExtractDiscography(b.String(), "/folk/briggs.html")
		require.NoError(t, err)
		assert.NotContains(t, d.Bio, "short")
		assert.Contains(t, d.Bio, "number 1")
		assert.Contains(t, d.Bio, "number 4")
		assert.NotContains(t, d.Bio, "number 5")
	})

	t.Run("empty page yields empty discography, not an error", func(t *testing.T) {
		t.Parallel()

		d, err := goquery.ExtractDiscography("<html><body></body></html>", "/folk/x.html")
		require.NoError(t, err)
		assert.Empty(t, d.Entries)
		assert.Empty(t, d.Bio)
	})
}
