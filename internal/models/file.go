package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/aalmasoud/unilife/internal/common"
)

// FileType is the coarse bucket a picked file is displayed under.
type FileType string

const (
	FileTypePDF      FileType = "pdf"
	FileTypeImage    FileType = "image"
	FileTypeAudio    FileType = "audio"
	FileTypeVideo    FileType = "video"
	FileTypeDocument FileType = "document"
)

// FileTypeFromMime maps a MIME type onto a display bucket.
func FileTypeFromMime(mimeType string) FileType {
	switch {
	case strings.Contains(mimeType, "pdf"):
		return FileTypePDF
	case strings.HasPrefix(mimeType, "image/"):
		return FileTypeImage
	case strings.HasPrefix(mimeType, "audio/"):
		return FileTypeAudio
	case strings.HasPrefix(mimeType, "video/"):
		return FileTypeVideo
	default:
		return FileTypeDocument
	}
}

// CourseFile is an uploaded course material. Uploads are session-local:
// the picked file stays on disk and only this record is kept in memory.
type CourseFile struct {
	ID          string
	Name        string
	Type        FileType
	SizeBytes   int64
	URI         string
	Course      string
	Chapter     string
	UploadedAt  time.Time
	IsProcessed bool
	Summary     string
}

// Validate checks the required upload form fields.
func (f CourseFile) Validate() error {
	if f.Name == "" || f.Course == "" || f.Chapter == "" {
		return fmt.Errorf("%w: name, course and chapter are required", common.ErrValidation)
	}
	if f.URI == "" {
		return fmt.Errorf("%w: pick a file before uploading", common.ErrValidation)
	}
	return nil
}

// FormatSize renders SizeBytes as "N.NN MB" the way the file list shows it.
func (f CourseFile) FormatSize() string {
	return fmt.Sprintf("%.2f MB", float64(f.SizeBytes)/1024/1024)
}
