package models

import (
	"testing"

	"github.com/aalmasoud/unilife/internal/common"
	"github.com/stretchr/testify/require"
)

func TestNoteValidate_Text(t *testing.T) {
	tests := []struct {
		name    string
		note    Note
		wantErr bool
	}{
		{"complete", Note{Kind: NoteKindText, Title: "X", Course: "Y", Content: "Z"}, false},
		{"missing title", Note{Kind: NoteKindText, Course: "Y", Content: "Z"}, true},
		{"missing course", Note{Kind: NoteKindText, Title: "X", Content: "Z"}, true},
		{"missing content", Note{Kind: NoteKindText, Title: "X", Course: "Y"}, true},
		{"text with recording", Note{Kind: NoteKindText, Title: "X", Course: "Y", Content: "Z", AudioURI: "a.wav"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.note.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNoteValidate_Audio(t *testing.T) {
	require.NoError(t, Note{Kind: NoteKindAudio, AudioURI: "rec.wav", DurationSeconds: 12}.Validate())

	// No text fields are required for an audio note.
	require.NoError(t, Note{Kind: NoteKindAudio, AudioURI: "rec.wav"}.Validate())

	err := Note{Kind: NoteKindAudio}.Validate()
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestNoteValidate_UnknownKind(t *testing.T) {
	require.ErrorIs(t, Note{Kind: "video"}.Validate(), common.ErrValidation)
}

func TestNoteFormatDuration(t *testing.T) {
	require.Equal(t, "00:05", Note{DurationSeconds: 5}.FormatDuration())
	require.Equal(t, "15:30", Note{DurationSeconds: 930}.FormatDuration())
}

func TestFileTypeFromMime(t *testing.T) {
	require.Equal(t, FileTypePDF, FileTypeFromMime("application/pdf"))
	require.Equal(t, FileTypeImage, FileTypeFromMime("image/png"))
	require.Equal(t, FileTypeAudio, FileTypeFromMime("audio/wav"))
	require.Equal(t, FileTypeVideo, FileTypeFromMime("video/mp4"))
	require.Equal(t, FileTypeDocument, FileTypeFromMime("text/plain"))
}

func TestLectureNormalize(t *testing.T) {
	l := Lecture{Day: "Sunday"}
	l.Normalize()
	require.Equal(t, "Untitled lecture", l.Title)
	require.Equal(t, "TBA", l.Professor)
	require.Equal(t, "TBA", l.Location)
	require.NotEmpty(t, l.Color)

	kept := Lecture{Title: "Databases", Professor: "Dr. Ali", Location: "Hall 205", Color: "#50C878"}
	kept.Normalize()
	require.Equal(t, "Databases", kept.Title)
	require.Equal(t, "#50C878", kept.Color)
}

func TestProfileFieldsRoundTrip(t *testing.T) {
	p := DefaultProfile()
	got, err := ProfileFromFields(p.Fields())
	require.NoError(t, err)
	require.Equal(t, p, got)
}
