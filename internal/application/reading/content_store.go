package reading

import "context"

// ChapterContentStore reads externally stored chapter bodies. The
// reading flow only ever needs full-text reads and existence checks;
// writes belong to the administrative side.
type ChapterContentStore interface {
	// Read returns the full text stored at the given relative path
	Read(ctx context.Context, path string) (string, error)

	// Exists reports whether content is present at the path
	Exists(ctx context.Context, path string) (bool, error)
}
