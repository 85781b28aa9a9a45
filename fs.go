package dataflow

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir returns a lazy Flow over the entries below root: both files and
// subdirectories, root itself excluded. With recursive set, the whole tree
// is walked depth-first; otherwise only the immediate entries are listed.
//
// A nonexistent or unreadable root yields an empty flow, never an error.
// Every traversal re-walks the filesystem, so two traversals may disagree
// if the directory changed in between.
func Dir(root string, recursive bool) Flow[string] {
	return Flow[string]{
		size: -1,
		seq: func(yield func(string) bool) {
			if recursive {
				_ = filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
					if err != nil || path == root {
						return nil
					}
					if !yield(path) {
						return filepath.SkipAll
					}
					return nil
				})
				return
			}
			entries, err := os.ReadDir(root)
			if err != nil {
				return
			}
			for _, e := range entries {
				if !yield(filepath.Join(root, e.Name())) {
					return
				}
			}
		},
	}
}

// FileHandle is a readable handle over one path of a flow of paths.
//
// A handle for a path that could not be opened still occupies its position
// in the sequence but reports IsOpen false; reading it returns io.EOF.
type FileHandle struct {
	Path string
	file *os.File
}

// IsOpen reports whether the underlying file was opened successfully.
func (h *FileHandle) IsOpen() bool {
	return h.file != nil
}

// Read implements io.Reader. A not-open handle reads as empty.
func (h *FileHandle) Read(p []byte) (int, error) {
	if h.file == nil {
		return 0, io.EOF
	}
	return h.file.Read(p)
}

// Close releases the underlying file. Closing a not-open handle is a
// no-op.
func (h *FileHandle) Close() error {
	if h.file == nil {
		return nil
	}
	return h.file.Close()
}

// OpenFiles eagerly opens every path in f, producing one handle per path
// in order. A missing or unopenable file contributes a not-open handle
// rather than an error. The caller owns the handles and closes the open
// ones.
func OpenFiles(f Flow[string]) Flow[*FileHandle] {
	paths := Collect(f)
	handles := make([]*FileHandle, 0, len(paths))
	for _, p := range paths {
		h := &FileHandle{Path: p}
		if file, err := os.Open(p); err == nil {
			h.file = file
		}
		handles = append(handles, h)
	}
	return FromSlice(handles)
}
