// internal/app/features/resources/storagehelper.go
package resources

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
)

// maxStoredNameLen caps the sanitized filename portion of a storage path.
const maxStoredNameLen = 100

// UploadInfo contains metadata about an uploaded file.
type UploadInfo struct {
	Path        string
	FileName    string
	Size        int64
	ContentType string
}

// uploadFile writes the reader to storage under a collision-free path and
// returns the stored metadata. The original filename is preserved for
// download headers; the storage path gets a uuid prefix so two uploads of
// "notes.pdf" never collide.
func uploadFile(ctx context.Context, store storage.Store, filename string, reader io.Reader, size int64, contentType string) (UploadInfo, error) {
	storedPath := storagePathFor(filename, time.Now().UTC())

	opts := &storage.PutOptions{ContentType: contentType}
	if err := store.Put(ctx, storedPath, reader, opts); err != nil {
		return UploadInfo{}, fmt.Errorf("failed to upload file: %w", err)
	}

	return UploadInfo{
		Path:        storedPath,
		FileName:    filename,
		Size:        size,
		ContentType: contentType,
	}, nil
}

// storagePathFor builds resources/YYYY/MM/<uuid8>-<sanitized name>.
func storagePathFor(filename string, now time.Time) string {
	return path.Join(
		fmt.Sprintf("resources/%04d/%02d", now.Year(), now.Month()),
		uuid.New().String()[:8]+"-"+sanitizeFilename(filename),
	)
}

// sanitizeFilename strips path components and maps anything outside
// [a-zA-Z0-9._-] to underscores, truncating long names while keeping a
// short extension intact.
func sanitizeFilename(filename string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, filepath.Base(filename))

	if name == "" || name == "." {
		return "file"
	}
	if len(name) > maxStoredNameLen {
		ext := filepath.Ext(name)
		if len(ext) >= maxStoredNameLen || len(ext) >= 10 {
			ext = ""
		}
		name = name[:maxStoredNameLen-len(ext)] + ext
	}
	return name
}
