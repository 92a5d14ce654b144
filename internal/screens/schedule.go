// Package screens holds the app's screen controllers. Each controller owns
// its collections and talks to the shared stores; rendering is left to the
// front end.
package screens

import (
	"github.com/aalmasoud/unilife/internal/collection"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/models"
)

// Schedule is the weekly lecture screen: one tab per day, lectures kept in
// insertion order within a day.
type Schedule struct {
	editor  *collection.Editor[models.Lecture]
	haptics haptics.Sink

	day string
}

func NewSchedule(sink haptics.Sink) *Schedule {
	ed := collection.New(
		collection.Append,
		func(l models.Lecture) string { return l.ID },
		func(l *models.Lecture, id string) { l.ID = id },
		func(l *models.Lecture) error { l.Normalize(); return nil },
	)
	ed.Seed(seedLectures())
	return &Schedule{editor: ed, haptics: sink, day: models.Days[0]}
}

// SelectDay switches the active tab.
func (s *Schedule) SelectDay(day string) {
	s.day = day
	s.haptics.Pulse(haptics.Selection)
}

// Day returns the active tab.
func (s *Schedule) Day() string { return s.day }

// LecturesOn returns the lectures of one day, in schedule order.
func (s *Schedule) LecturesOn(day string) []models.Lecture {
	return s.editor.Filter(func(l models.Lecture) bool { return l.Day == day })
}

// Visible returns the active day's lectures.
func (s *Schedule) Visible() []models.Lecture { return s.LecturesOn(s.day) }

// Add stores a lecture draft, filling placeholders for empty fields.
func (s *Schedule) Add(draft models.Lecture) models.Lecture {
	stored, _ := s.editor.Add(draft) // the normalizing validator never fails
	s.haptics.Pulse(haptics.Success)
	return stored
}

// Edit patches the lecture with the given id in place.
func (s *Schedule) Edit(id string, patch func(*models.Lecture)) {
	s.editor.Update(id, patch)
}

// Delete removes a lecture. Missing ids are ignored.
func (s *Schedule) Delete(id string) {
	s.editor.Remove(id)
	s.haptics.Pulse(haptics.Warning)
}

// Len reports the total lecture count across all days.
func (s *Schedule) Len() int { return s.editor.Len() }
