package coffview

import "io"

// Source is a random-access byte source holding a COFF object file.
// *os.File and *bytes.Reader both satisfy it.
type Source interface {
	io.Reader
	io.Seeker
}

// SourceSizer reports the total length of a Source in bytes.
type SourceSizer interface {
	Size() int64
}
