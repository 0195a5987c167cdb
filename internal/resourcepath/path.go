package resourcepath

import (
	"path"
	"strings"
)

// Separator divides the segments of a Path.
const Separator = "/"

// Path is a logical, slash-separated address of an asset.
type Path string

// String returns the path as written in the source text.
func (p Path) String() string {
	return string(p)
}

// IsZero reports whether the path is empty.
func (p Path) IsZero() bool {
	return p == ""
}

// Segments splits the path into its segments, dropping the leading root.
// It does not validate; an empty segment is returned as "".
func (p Path) Segments() []string {
	if p.IsZero() {
		return nil
	}
	return strings.Split(strings.TrimPrefix(string(p), Separator), Separator)
}

// Namespace returns the first segment of an absolute path, e.g. "src" for
// "/src/Assets/Meshes/plane.glb". Relative or empty paths have no namespace.
func (p Path) Namespace() string {
	if !strings.HasPrefix(string(p), Separator) {
		return ""
	}
	return p.Segments()[0]
}

// Ext returns the file extension of the last segment, including the dot.
func (p Path) Ext() string {
	return path.Ext(string(p))
}
