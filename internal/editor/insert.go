package editor

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// WriterInserter writes the text to a stream, one line per insertion
// request. It is the default target when no file is given.
type WriterInserter struct {
	w io.Writer
}

// NewWriterInserter returns an Inserter that writes to w.
func NewWriterInserter(w io.Writer) *WriterInserter {
	return &WriterInserter{w: w}
}

// Insert writes text to the underlying writer as a single line.
func (wi *WriterInserter) Insert(text string) error {
	if _, err := fmt.Fprintln(wi.w, text); err != nil {
		return fmt.Errorf("%w: %v", ErrInsertion, err)
	}
	return nil
}

// FileInserter splices text into a file at a set of byte offsets, the
// command-line stand-in for multiple cursors. Every offset receives the
// same text in one call.
type FileInserter struct {
	path    string
	offsets []int64
}

// NewFileInserter returns an Inserter that targets path at the given byte
// offsets. Duplicate offsets are collapsed; offsets are validated against
// the file size when Insert runs.
func NewFileInserter(path string, offsets []int64) *FileInserter {
	return &FileInserter{path: path, offsets: offsets}
}

// Insert places text at each offset of the file. The file is rewritten in
// one pass; either every insertion point is updated or none is.
func (fi *FileInserter) Insert(text string) error {
	info, err := os.Stat(fi.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInsertion, err)
	}

	data, err := os.ReadFile(fi.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInsertion, err)
	}

	offsets := make([]int64, 0, len(fi.offsets))
	seen := make(map[int64]struct{}, len(fi.offsets))
	for _, off := range fi.offsets {
		if off < 0 || off > int64(len(data)) {
			return fmt.Errorf("%w: offset %d outside file of %d bytes", ErrInsertion, off, len(data))
		}
		if _, dup := seen[off]; dup {
			continue
		}
		seen[off] = struct{}{}
		offsets = append(offsets, off)
	}

	// Splice back to front so earlier offsets stay valid.
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] > offsets[j] })

	for _, off := range offsets {
		spliced := make([]byte, 0, len(data)+len(text))
		spliced = append(spliced, data[:off]...)
		spliced = append(spliced, text...)
		spliced = append(spliced, data[off:]...)
		data = spliced
	}

	if err := os.WriteFile(fi.path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: %v", ErrInsertion, err)
	}
	return nil
}
