package folkweb

// recordLabels is the hand-curated list backing the record_labels operation.
// The site has no machine-readable label index, so this is maintained by
// hand against its records section.
var recordLabels = []RecordLabel{
	{
		Name:        "Topic Records",
		Description: "The oldest independent label in Britain, home of the Voice of the People anthologies and much of the post-war revival.",
		Path:        "/folk/records/topic.html",
	},
	{
		Name:        "Fellside Recordings",
		Description: "Cumbrian label with a deep catalogue of traditional English song.",
		Path:        "/folk/records/fellside.html",
	},
	{
		Name:        "Leader / Trailer",
		Description: "Bill Leader's 1970s labels, source recordings of many revival and traditional singers.",
		Path:        "/folk/records/leader.html",
	},
	{
		Name:        "Fledg'ling Records",
		Description: "Reissues and new recordings from the English folk rock lineage.",
		Path:        "/folk/records/fledgling.html",
	},
	{
		Name:        "Veteran",
		Description: "Field recordings of traditional singers and musicians from England and Ireland.",
		Path:        "/folk/records/veteran.html",
	},
	{
		Name:        "Musical Traditions",
		Description: "Documentary recordings of traditional performers, with extensive booklet notes.",
		Path:        "/folk/records/musicaltraditions.html",
	},
}

// RecordLabels returns the curated record label list.
func RecordLabels() []RecordLabel {
	out := make([]RecordLabel, len(recordLabels))
	copy(out, recordLabels)
	return out
}
