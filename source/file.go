// Package source owns immutable source bytes together with a content hash
// and provides byte-range substring extraction. It mirrors the FileId/File
// split in llmcc-core's file.rs: a file may be read from a physical path
// while presenting a different logical path downstream.
package source

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/llmcc/cerr"
)

// File is one immutable source buffer with its content hash and optional
// logical path (which may differ from the physical path it was read from).
type File struct {
	// LogicalPath is the path consumers should report; may be empty for
	// in-memory sources.
	LogicalPath string
	// PhysicalPath is where the bytes were actually read from, if any.
	PhysicalPath string
	content      []byte
	contentHash  uint64
}

// NewContent builds a File from in-memory bytes with no path.
func NewContent(content []byte) (*File, error) {
	h, err := Hash(content)
	if err != nil {
		return nil, cerr.Wrap("source.NewContent", cerr.EncodingError, err)
	}
	return &File{content: content, contentHash: h}, nil
}

// NewPath reads path via the shared afs.Service and uses it as both the
// physical and logical path.
func NewPath(ctx context.Context, fs afs.Service, path string) (*File, error) {
	return NewPathWithLogical(ctx, fs, path, path)
}

// NewPathWithLogical reads physicalPath but reports logicalPath downstream,
// useful when files carry ordering prefixes that should be stripped for
// consumers while still reading the real file from disk.
func NewPathWithLogical(ctx context.Context, fs afs.Service, physicalPath, logicalPath string) (*File, error) {
	content, err := fs.DownloadWithURL(ctx, physicalPath)
	if err != nil {
		return nil, cerr.Wrap("source.NewPathWithLogical", cerr.IoFailed, err).WithUnit(physicalPath)
	}
	h, err := Hash(content)
	if err != nil {
		return nil, cerr.Wrap("source.NewPathWithLogical", cerr.EncodingError, err).WithUnit(physicalPath)
	}
	return &File{
		LogicalPath:  logicalPath,
		PhysicalPath: physicalPath,
		content:      content,
		contentHash:  h,
	}, nil
}

// Content returns the full source bytes.
func (f *File) Content() []byte { return f.content }

// ContentHash returns the 64-bit content hash computed at load time.
func (f *File) ContentHash() uint64 { return f.contentHash }

// Len returns the number of source bytes.
func (f *File) Len() int { return len(f.content) }

// Text extracts the substring [start,end) as a string. Callers are expected
// to pass ranges that satisfy the HIR invariant (subrange of the file); out
// of range or inverted ranges return an error instead of panicking.
func (f *File) Text(start, end int) (string, error) {
	if start < 0 || end < start || end > len(f.content) {
		return "", cerr.New("source.Text", cerr.InvariantViolation, "byte range out of bounds")
	}
	return string(f.content[start:end]), nil
}

// MustText is Text but panics on an invalid range; use only where the range
// is already known-valid (e.g. ranges copied straight from a HIR node).
func (f *File) MustText(start, end int) string {
	s, err := f.Text(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// LineOf returns the 1-indexed source line containing byte offset pos,
// counting newlines up to pos. Used for the query result format's
// `<path>:<start_line>-<end_line>` rendering (spec section 6).
func (f *File) LineOf(pos int) int {
	limit := pos
	if limit > len(f.content) {
		limit = len(f.content)
	}
	line := 1
	for i := 0; i < limit; i++ {
		if f.content[i] == '\n' {
			line++
		}
	}
	return line
}
