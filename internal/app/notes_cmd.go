package app

import (
	"context"
	"fmt"

	"github.com/aalmasoud/unilife/internal/models"
	"github.com/aalmasoud/unilife/internal/screens"
)

// ShowNotes lists the notes of the active filter tab.
func (a *App) ShowNotes(ctx context.Context) error {
	a.nav.Navigate(screens.ScreenNotes, nil)

	fmt.Fprintf(a.out, "Notes (%s):\n", a.notes.Filter())
	for _, n := range a.notes.Visible() {
		mark := " "
		if n.IsImportant {
			mark = "*"
		}
		if n.Kind == models.NoteKindAudio {
			fmt.Fprintf(a.out, "  [%s]%s %s — voice %s\n", n.ID, mark, n.Title, n.FormatDuration())
			continue
		}
		fmt.Fprintf(a.out, "  [%s]%s %s (%s)\n", n.ID, mark, n.Title, n.Course)
	}
	return nil
}

// SetNoteFilter switches the notes tab: all, text, audio or important.
func (a *App) SetNoteFilter(ctx context.Context) error {
	f, err := GetSimpleText(a.reader, "Filter (all/text/audio/important)", a.out)
	if err != nil {
		return err
	}
	switch screens.NoteFilter(f) {
	case screens.FilterAll, screens.FilterText, screens.FilterAudio, screens.FilterImportant:
		a.notes.SetFilter(screens.NoteFilter(f))
	default:
		fmt.Fprintln(a.out, "Unknown filter:", f)
	}
	return nil
}

// AddTextNote prompts the text note form and saves it.
func (a *App) AddTextNote(ctx context.Context) error {
	draft := screens.NoteDraft{Kind: models.NoteKindText}
	var err error
	if draft.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if draft.Course, err = GetSimpleText(a.reader, "Course", a.out); err != nil {
		return err
	}
	if draft.Content, err = GetMultiline(a.reader, "Content", a.out); err != nil {
		return err
	}
	if draft.IsImportant, err = GetYesNo(a.reader, "Mark as important?", a.out); err != nil {
		return err
	}

	stored, err := a.notes.SaveDraft(ctx, draft)
	if err != nil {
		fmt.Fprintln(a.out, "Could not save:", err)
		return err
	}
	fmt.Fprintf(a.out, "Saved note [%s]\n", stored.ID)
	return nil
}

// RecordStart begins a voice capture.
func (a *App) RecordStart(ctx context.Context) error {
	if err := a.notes.Rec.Start(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not start recording:", err)
		return err
	}
	fmt.Fprintln(a.out, "Recording... (type 'stop' to finish)")
	return nil
}

// RecordStop ends the capture, keeping it for preview and save.
func (a *App) RecordStop(ctx context.Context) error {
	if err := a.notes.Rec.Stop(ctx); err != nil {
		fmt.Fprintln(a.out, "Could not stop recording:", err)
		return err
	}
	fmt.Fprintf(a.out, "Stopped at %d s (play/savevoice/discard)\n", a.notes.Rec.Elapsed())
	return nil
}

// RecordPlay toggles preview playback of the stopped capture.
func (a *App) RecordPlay(ctx context.Context) error {
	if err := a.notes.Rec.Play(ctx); err != nil {
		fmt.Fprintln(a.out, "Playback problem:", err)
		return err
	}
	fmt.Fprintln(a.out, "Playback:", a.notes.Rec.State())
	return nil
}

// RecordDiscard drops the stopped capture.
func (a *App) RecordDiscard(ctx context.Context) error {
	if err := a.notes.Rec.Discard(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Recording discarded")
	return nil
}

// SaveVoiceNote commits the stopped capture into an audio note.
func (a *App) SaveVoiceNote(ctx context.Context) error {
	draft := screens.NoteDraft{Kind: models.NoteKindAudio}
	var err error
	if draft.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if draft.Course, err = GetSimpleText(a.reader, "Course", a.out); err != nil {
		return err
	}

	stored, err := a.notes.SaveDraft(ctx, draft)
	if err != nil {
		fmt.Fprintln(a.out, "Could not save:", err)
		return err
	}
	fmt.Fprintf(a.out, "Saved voice note [%s] (%s)\n", stored.ID, stored.FormatDuration())
	return nil
}
