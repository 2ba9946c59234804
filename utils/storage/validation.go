package storage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rule limits the size and extension of an uploaded file.
type Rule struct {
	MaxBytes   int64
	Extensions []string
}

var (
	AttachmentRule = Rule{MaxBytes: 1 << 20, Extensions: []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}}
	AvatarRule     = Rule{MaxBytes: 500 << 10, Extensions: []string{".jpg", ".jpeg", ".png", ".webp"}}
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (r Rule) Validate(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return &ValidationError{Message: "file is required"}
	}
	if fileHeader.Size > r.MaxBytes {
		return &ValidationError{Message: fmt.Sprintf("file must not exceed %s", humanSize(r.MaxBytes))}
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range r.Extensions {
		if ext == allowed {
			return nil
		}
	}
	return &ValidationError{Message: fmt.Sprintf("file type %q is not allowed (allowed: %s)", ext, strings.Join(r.Extensions, ", "))}
}

// AttachmentKey names a letter attachment: public/{jenis}_{unixms}-{name}.
func AttachmentKey(jenis string, now time.Time, filename string) string {
	name := strings.ReplaceAll(filepath.Base(filename), " ", "_")
	return "public/" + jenis + "_" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + name
}

// AvatarKey names an avatar object: {userID}/{uuid}{ext}.
func AvatarKey(userID uint, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strconv.FormatUint(uint64(userID), 10) + "/" + uuid.NewString() + ext
}

func humanSize(n int64) string {
	if n >= 1<<20 && n%(1<<20) == 0 {
		return strconv.FormatInt(n>>20, 10) + "MB"
	}
	return strconv.FormatInt(n>>10, 10) + "KB"
}
