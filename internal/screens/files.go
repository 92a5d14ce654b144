package screens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aalmasoud/unilife/internal/collection"
	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/models"
	"github.com/aalmasoud/unilife/internal/picker"
)

// CourseAll is the course filter's show-everything sentinel.
const CourseAll = "all"

// UploadForm is the metadata the user fills in before picking a file.
type UploadForm struct {
	Name    string
	Course  string
	Chapter string
}

// Files is the course materials screen. Uploads are session-local: the
// picked file stays where it is and only its record enters the list, newest
// first.
type Files struct {
	editor  *collection.Editor[models.CourseFile]
	picker  picker.Picker
	haptics haptics.Sink
	log     logging.Logger

	course string
}

func NewFiles(pk picker.Picker, sink haptics.Sink, log logging.Logger) *Files {
	ed := collection.New(
		collection.Prepend,
		func(f models.CourseFile) string { return f.ID },
		func(f *models.CourseFile, id string) { f.ID = id },
		func(f *models.CourseFile) error { return f.Validate() },
	)
	ed.Seed(seedFiles())
	return &Files{editor: ed, picker: pk, haptics: sink, log: log, course: CourseAll}
}

// SetCourse switches the course filter. CourseAll shows everything.
func (f *Files) SetCourse(course string) {
	f.course = course
	f.haptics.Pulse(haptics.Selection)
}

// Course returns the active filter.
func (f *Files) Course() string { return f.course }

// Visible returns the files matching the active course filter, newest
// first.
func (f *Files) Visible() []models.CourseFile {
	return f.editor.Filter(func(cf models.CourseFile) bool {
		return f.course == CourseAll || cf.Course == f.course
	})
}

// Courses lists the distinct courses present, in list order.
func (f *Files) Courses() []string {
	var out []string
	seen := map[string]bool{}
	for _, cf := range f.editor.All() {
		if !seen[cf.Course] {
			seen[cf.Course] = true
			out = append(out, cf.Course)
		}
	}
	return out
}

// Upload runs the pick-then-store flow: the picker supplies the file, the
// form supplies the metadata, and the record lands at the top of the list.
// A dismissed picker surfaces ErrCancelled untouched.
func (f *Files) Upload(ctx context.Context, form UploadForm, filterTypes []string) (models.CourseFile, error) {
	doc, err := f.picker.Pick(ctx, filterTypes)
	if err != nil {
		if !errors.Is(err, common.ErrCancelled) {
			f.haptics.Pulse(haptics.Error)
			f.log.Error(ctx, "file pick failed", "error", err)
		}
		return models.CourseFile{}, err
	}

	name := form.Name
	if name == "" {
		name = doc.Name
	}
	draft := models.CourseFile{
		Name:       name,
		Type:       models.FileTypeFromMime(doc.MimeType),
		SizeBytes:  doc.Size,
		URI:        doc.URI,
		Course:     form.Course,
		Chapter:    form.Chapter,
		UploadedAt: time.Now(),
	}

	stored, err := f.editor.Add(draft)
	if err != nil {
		f.haptics.Pulse(haptics.Error)
		return models.CourseFile{}, fmt.Errorf("uploading file: %w", err)
	}
	f.haptics.Pulse(haptics.Success)
	f.log.Debug(ctx, "file uploaded", "id", stored.ID, "type", string(stored.Type))
	return stored, nil
}

// MarkProcessed attaches a summary and flips the processed flag. Missing
// ids are ignored.
func (f *Files) MarkProcessed(id, summary string) {
	f.editor.Update(id, func(cf *models.CourseFile) {
		cf.IsProcessed = true
		cf.Summary = summary
	})
}

// Delete removes a file record. Missing ids are ignored.
func (f *Files) Delete(id string) {
	f.editor.Remove(id)
	f.haptics.Pulse(haptics.Warning)
}

// Get looks up one file record.
func (f *Files) Get(id string) (models.CourseFile, bool) { return f.editor.Get(id) }

// Len reports the file count.
func (f *Files) Len() int { return f.editor.Len() }
