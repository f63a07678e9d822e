package importer

import "io"

// Format identifies a supported upload layout.
type Format string

const (
	// FormatNameList is a plain-text or CSV export with one exercise
	// name per line.
	FormatNameList Format = "namelist"
)

// Importer extracts candidate exercise names from an uploaded file.
type Importer interface {
	Parse(r io.Reader) ([]string, error)
}
