package folkweb

import "strings"

// SiteOrigin is the fixed origin of the encyclopaedia site. There is no
// configuration surface for it in the operations themselves; the CLI can
// override it for fixture servers.
const SiteOrigin = "https://mainlynorfolk.info"

// Index documents searched by the search operation.
const (
	RootPath        = "/"
	BalladIndexPath = "/folk/songs/childballads.html"
	LawsIndexPath   = "/folk/songs/lawsindex.html"
)

// ResolvePath turns a link found on a page into a site-absolute path, given
// the path of the referring page. It is a pure string transformation:
//
//   - full URLs and site-absolute paths (leading "/") pass through unchanged,
//     so re-applying ResolvePath to its own output is a no-op
//   - each leading "../" moves the referrer's directory one level up
//   - anything else is joined onto the referrer's directory
//
// The site's markup mixes all three link styles freely; every record the
// extractors return goes through this so callers never see a path that
// depends on knowing the referring page.
func ResolvePath(href, referrerPath string) string {
	if strings.Contains(href, "://") {
		return href
	}
	if strings.HasPrefix(href, "/") {
		return href
	}

	base := directoryOf(referrerPath)
	for strings.HasPrefix(href, "../") {
		href = strings.TrimPrefix(href, "../")
		base = parentDir(base)
	}
	return base + href
}

// directoryOf returns the directory portion of a page path, with a trailing
// slash. A path that already ends in "/" is its own directory.
func directoryOf(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "/"
	}
	return path[:i+1]
}

// parentDir returns the directory containing dir. The site root is its own
// parent, which bounds the loop in ResolvePath regardless of how many
// parent markers a link chains.
func parentDir(dir string) string {
	trimmed := strings.TrimSuffix(dir, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return "/"
	}
	return trimmed[:i+1]
}
