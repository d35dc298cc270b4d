package token

// FileSet is a registry of Files scanned during one compilation, so that a
// Pos minted by any of them can still be told apart. The zero value is an
// empty FileSet ready to use, the same as what NewFileSet returns.
type FileSet struct {
	files []*File
}

// NewFileSet returns an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{}
}

// AddFile registers a new File of the given name and size and returns it.
// sizeHint is accepted for symmetry with callers that don't yet know the
// final size (they pass -1) and is ignored: size is always the
// authoritative value.
func (fs *FileSet) AddFile(name string, sizeHint, size int) *File {
	f := NewFile(name, size)
	fs.files = append(fs.files, f)
	return f
}

// Files returns every File registered so far, in registration order.
func (fs *FileSet) Files() []*File {
	return fs.files
}
