// Package folkweb provides structured, read-only access to a public
// folk-music encyclopaedia website. It fetches pages through a caching
// HTTP layer, extracts normalized records (search hits, ballad entries,
// Laws-index entries, article text, discographies) from the site's
// loosely structured markup, and formats them as text payloads for an
// AI agent or a human at a terminal.
//
// This package contains domain types, interfaces, and pure rules
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency or activity
// (e.g., http/, goquery/, lru/, browse/).
package folkweb
