package ingest

// Candidate is a PDF discovered directly under the scan folder.
type Candidate struct {
	Name string // base name, as listed
	Path string // folder joined with Name
}

// DirStats summarizes a folder listing.
type DirStats struct {
	Scanned uint32
	Matched uint32
}
