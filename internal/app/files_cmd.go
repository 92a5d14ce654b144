package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/screens"
)

// ShowFiles lists the files of the active course filter.
func (a *App) ShowFiles(ctx context.Context) error {
	a.nav.Navigate(screens.ScreenFiles, nil)

	course, err := GetSimpleText(a.reader, fmt.Sprintf("Course filter (%q for everything, empty keeps %q)", screens.CourseAll, a.files.Course()), a.out)
	if err != nil {
		return err
	}
	if course != "" {
		a.files.SetCourse(course)
	}

	for _, f := range a.files.Visible() {
		processed := ""
		if f.IsProcessed {
			processed = " ✓"
		}
		fmt.Fprintf(a.out, "  [%s] %s  %s %s%s\n", f.ID, f.Name, f.FormatSize(), f.Course, processed)
	}
	return nil
}

// UploadFile runs the pick-and-upload flow.
func (a *App) UploadFile(ctx context.Context) error {
	form := screens.UploadForm{}
	var err error
	if form.Name, err = GetSimpleText(a.reader, "Display name (empty keeps the file's own)", a.out); err != nil {
		return err
	}
	if form.Course, err = GetSimpleText(a.reader, "Course", a.out); err != nil {
		return err
	}
	if form.Chapter, err = GetSimpleText(a.reader, "Chapter", a.out); err != nil {
		return err
	}

	stored, err := a.files.Upload(ctx, form, nil)
	if err != nil {
		if errors.Is(err, common.ErrCancelled) {
			fmt.Fprintln(a.out, "Upload cancelled")
			return nil
		}
		fmt.Fprintln(a.out, "Upload failed:", err)
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %s [%s]\n", stored.Name, stored.ID)
	return nil
}
