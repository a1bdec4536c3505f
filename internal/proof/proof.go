// Package proof stores uploaded payment proofs on local disk and enforces
// the upload constraints: sniffed MIME type in {PNG, JPEG, PDF} and size at
// most 5 MiB. Constraint violations happen before any byte is written.
package proof

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	dErrors "regdesk/pkg/domain-errors"
)

// MaxSize is the upload ceiling. Matches the original deployment's 5 MB
// multer limit.
const MaxSize = 5 << 20

var extByType = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"application/pdf": ".pdf",
}

// Check validates size and content type. The type is sniffed from the bytes,
// never trusted from the client. Returns the canonical file extension.
func Check(data []byte) (ext string, err error) {
	if len(data) == 0 {
		return "", dErrors.New(dErrors.CodeBadRequest, "a proof file is required")
	}
	if len(data) > MaxSize {
		return "", dErrors.New(dErrors.CodePayloadTooLarge, "proof file exceeds 5 MiB")
	}
	contentType := http.DetectContentType(data)
	ext, ok := extByType[contentType]
	if !ok {
		return "", dErrors.New(dErrors.CodeUnsupportedMedia, "proof must be PNG, JPEG or PDF")
	}
	return ext, nil
}

// Storage writes proofs under a single directory, one file per submission.
type Storage struct {
	dir string
}

// NewStorage ensures the upload directory exists.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Dir returns the storage directory, for static serving.
func (s *Storage) Dir() string { return s.dir }

// Save validates the data and writes it under a collision-free name.
// The returned reference is the bare filename; callers prepend /uploads/.
func (s *Storage) Save(data []byte) (ref string, err error) {
	ext, err := Check(data)
	if err != nil {
		return "", err
	}
	ref = "receipt-" + uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("write proof file: %w", err)
	}
	return ref, nil
}
