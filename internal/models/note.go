// Package models defines the record types held by the app's screens:
// notes, lectures, course files, delivery offers and the student profile.
package models

import (
	"fmt"
	"time"

	"github.com/aalmasoud/unilife/internal/common"
)

// NoteKind classifies a note. It is immutable after creation.
type NoteKind string

const (
	NoteKindText  NoteKind = "text"
	NoteKindAudio NoteKind = "audio"
)

// Note is either a text note or an audio note. A text note never carries
// AudioURI; an audio note is saved on its recording alone and does not
// require Content.
type Note struct {
	ID              string
	Kind            NoteKind
	Title           string
	Course          string
	Content         string
	AudioURI        string
	DurationSeconds int
	IsImportant     bool
	CreatedAt       time.Time
}

// Validate checks the per-kind required fields before save.
func (n Note) Validate() error {
	switch n.Kind {
	case NoteKindText:
		if n.Title == "" || n.Course == "" || n.Content == "" {
			return fmt.Errorf("%w: title, course and content are required", common.ErrValidation)
		}
		if n.AudioURI != "" {
			return fmt.Errorf("%w: a text note cannot carry a recording", common.ErrValidation)
		}
	case NoteKindAudio:
		if n.AudioURI == "" {
			return fmt.Errorf("%w: record a note before saving", common.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown note kind %q", common.ErrValidation, n.Kind)
	}
	return nil
}

// FormatDuration renders DurationSeconds as "MM:SS" for display.
func (n Note) FormatDuration() string {
	return fmt.Sprintf("%02d:%02d", n.DurationSeconds/60, n.DurationSeconds%60)
}
