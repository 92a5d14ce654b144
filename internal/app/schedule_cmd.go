package app

import (
	"context"
	"fmt"

	"github.com/aalmasoud/unilife/internal/models"
	"github.com/aalmasoud/unilife/internal/screens"
)

// ShowSchedule switches the day tab if asked and lists that day's lectures.
func (a *App) ShowSchedule(ctx context.Context) error {
	a.nav.Navigate(screens.ScreenSchedule, nil)

	day, err := GetSimpleText(a.reader, fmt.Sprintf("Day (%v, empty keeps %s)", models.Days, a.schedule.Day()), a.out)
	if err != nil {
		return err
	}
	if day != "" {
		a.schedule.SelectDay(day)
	}

	lectures := a.schedule.Visible()
	if len(lectures) == 0 {
		fmt.Fprintf(a.out, "No lectures on %s\n", a.schedule.Day())
		return nil
	}
	for _, l := range lectures {
		fmt.Fprintf(a.out, "  [%s] %s-%s  %s — %s (%s)\n", l.ID, l.StartTime, l.EndTime, l.Title, l.Professor, l.Location)
	}
	return nil
}

// AddLecture prompts for the lecture form and stores it. Empty fields get
// placeholder values.
func (a *App) AddLecture(ctx context.Context) error {
	draft := models.Lecture{}
	var err error
	if draft.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if draft.Professor, err = GetSimpleText(a.reader, "Professor", a.out); err != nil {
		return err
	}
	if draft.Location, err = GetSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	if draft.StartTime, err = GetSimpleText(a.reader, "Start time (HH:MM)", a.out); err != nil {
		return err
	}
	if draft.EndTime, err = GetSimpleText(a.reader, "End time (HH:MM)", a.out); err != nil {
		return err
	}
	if draft.Day, err = GetSimpleText(a.reader, "Day", a.out); err != nil {
		return err
	}

	stored := a.schedule.Add(draft)
	fmt.Fprintf(a.out, "Added %q on %s [%s]\n", stored.Title, stored.Day, stored.ID)
	return nil
}

// DeleteLecture removes a lecture by id.
func (a *App) DeleteLecture(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Lecture id", a.out)
	if err != nil {
		return err
	}
	a.schedule.Delete(id)
	fmt.Fprintln(a.out, "Deleted (if it existed)")
	return nil
}
