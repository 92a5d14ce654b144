package screens

import (
	"context"
	"fmt"
	"time"

	"github.com/aalmasoud/unilife/internal/collection"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/models"
	"github.com/aalmasoud/unilife/internal/recording"
)

// NoteFilter is one of the notes screen's filter tabs.
type NoteFilter string

const (
	FilterAll       NoteFilter = "all"
	FilterText      NoteFilter = "text"
	FilterAudio     NoteFilter = "audio"
	FilterImportant NoteFilter = "important"
)

// NoteDraft is the add-note form. For audio notes the recording itself
// comes from the screen's controller, not the draft.
type NoteDraft struct {
	Kind        models.NoteKind
	Title       string
	Course      string
	Content     string
	IsImportant bool
}

// Notes is the notes screen: a filterable note list plus the audio note
// composer built around one RecordingController.
type Notes struct {
	editor  *collection.Editor[models.Note]
	haptics haptics.Sink
	log     logging.Logger

	// Rec drives the audio composer. The front end calls its
	// Start/Stop/Play directly; saving goes through SaveDraft.
	Rec *recording.Controller

	filter NoteFilter
}

func NewNotes(rec *recording.Controller, sink haptics.Sink, log logging.Logger) *Notes {
	ed := collection.New(
		collection.Append,
		func(n models.Note) string { return n.ID },
		func(n *models.Note, id string) { n.ID = id },
		func(n *models.Note) error { return n.Validate() },
	)
	ed.Seed(seedNotes())
	return &Notes{editor: ed, haptics: sink, log: log, Rec: rec, filter: FilterAll}
}

// SetFilter switches the visible tab.
func (n *Notes) SetFilter(f NoteFilter) {
	n.filter = f
	n.haptics.Pulse(haptics.Selection)
}

// Filter returns the active tab.
func (n *Notes) Filter() NoteFilter { return n.filter }

// Visible returns the notes matching the active tab, in list order.
func (n *Notes) Visible() []models.Note {
	return n.editor.Filter(func(note models.Note) bool {
		switch n.filter {
		case FilterText:
			return note.Kind == models.NoteKindText
		case FilterAudio:
			return note.Kind == models.NoteKindAudio
		case FilterImportant:
			return note.IsImportant
		default:
			return true
		}
	})
}

// SaveDraft stores a new note. Text drafts are validated as-is; an audio
// draft commits the controller's capture, which only succeeds once a
// recording was stopped.
func (n *Notes) SaveDraft(ctx context.Context, draft NoteDraft) (models.Note, error) {
	note := models.Note{
		Kind:        draft.Kind,
		Title:       draft.Title,
		Course:      draft.Course,
		Content:     draft.Content,
		IsImportant: draft.IsImportant,
		CreatedAt:   time.Now(),
	}

	if draft.Kind == models.NoteKindAudio {
		uri, seconds, err := n.Rec.Commit()
		if err != nil {
			n.haptics.Pulse(haptics.Error)
			return models.Note{}, err
		}
		note.AudioURI = uri
		note.DurationSeconds = seconds
		note.Content = ""
	}

	stored, err := n.editor.Add(note)
	if err != nil {
		n.haptics.Pulse(haptics.Error)
		return models.Note{}, fmt.Errorf("saving note: %w", err)
	}

	if draft.Kind == models.NoteKindAudio {
		// The capture now belongs to the note; reset the composer.
		if err := n.Rec.Discard(ctx); err != nil {
			n.log.Warn(ctx, "failed to reset recorder after save", "error", err)
		}
	}

	n.haptics.Pulse(haptics.Success)
	n.log.Debug(ctx, "note saved", "kind", string(stored.Kind), "id", stored.ID)
	return stored, nil
}

// ToggleImportant flips a note's important flag. Missing ids are ignored.
func (n *Notes) ToggleImportant(id string) {
	n.editor.Update(id, func(note *models.Note) { note.IsImportant = !note.IsImportant })
	n.haptics.Pulse(haptics.Light)
}

// Delete removes a note. Missing ids are ignored.
func (n *Notes) Delete(id string) {
	n.editor.Remove(id)
	n.haptics.Pulse(haptics.Warning)
}

// Get looks up one note.
func (n *Notes) Get(id string) (models.Note, bool) { return n.editor.Get(id) }

// CloseComposer is the composer's dismiss path: an in-progress recording is
// stopped and dropped, an unsaved stopped capture is discarded.
func (n *Notes) CloseComposer(ctx context.Context) {
	if err := n.Rec.Close(ctx); err != nil {
		n.log.Warn(ctx, "failed to tear down recorder", "error", err)
	}
}

// Len reports the note count.
func (n *Notes) Len() int { return n.editor.Len() }
