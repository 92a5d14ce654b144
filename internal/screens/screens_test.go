package screens

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalmasoud/unilife/internal/audio"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/models"
	"github.com/aalmasoud/unilife/internal/recording"
)

// Fake capture/playback devices for the notes composer tests.

type fakeRecorder struct {
	started int
	stopped int
	uri     string
}

func (r *fakeRecorder) Start(context.Context) error { r.started++; return nil }
func (r *fakeRecorder) Stop(context.Context) (string, error) {
	r.stopped++
	return r.uri, nil
}

type fakeSound struct{}

func (fakeSound) Play() error       { return nil }
func (fakeSound) Pause() error      { return nil }
func (fakeSound) OnComplete(func()) {}
func (fakeSound) Close() error      { return nil }

type fakePlayer struct{}

func (fakePlayer) Load(context.Context, string) (audio.Sound, error) { return fakeSound{}, nil }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func newTestNotes(uri string) (*Notes, *fakeRecorder) {
	rec := &fakeRecorder{uri: uri}
	ctl := recording.NewController(rec, fakePlayer{}, haptics.Discard{}, testLogger())
	return NewNotes(ctl, haptics.Discard{}, testLogger()), rec
}

func TestNotes_TextNoteAppearsInMatchingFilters(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNotes("")
	base := n.Len()

	stored, err := n.SaveDraft(ctx, NoteDraft{
		Kind:    models.NoteKindText,
		Title:   "Deadlock conditions",
		Course:  "Operating Systems",
		Content: "Mutual exclusion, hold and wait, no preemption, circular wait.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	contains := func(notes []models.Note) bool {
		for _, note := range notes {
			if note.ID == stored.ID {
				return true
			}
		}
		return false
	}

	n.SetFilter(FilterAll)
	require.Len(t, n.Visible(), base+1)
	require.True(t, contains(n.Visible()))

	n.SetFilter(FilterText)
	require.True(t, contains(n.Visible()))

	n.SetFilter(FilterAudio)
	require.False(t, contains(n.Visible()))

	n.SetFilter(FilterImportant)
	require.False(t, contains(n.Visible()))

	// Toggling important moves it into the important view.
	n.ToggleImportant(stored.ID)
	require.True(t, contains(n.Visible()))
}

func TestNotes_TextDraftValidation(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNotes("")

	_, err := n.SaveDraft(ctx, NoteDraft{Kind: models.NoteKindText, Title: "only a title"})
	require.Error(t, err)
}

func TestNotes_AudioDraftCommitsRecording(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNotes("recordings/take1.wav")

	require.NoError(t, n.Rec.Start(ctx))
	require.NoError(t, n.Rec.Stop(ctx))

	stored, err := n.SaveDraft(ctx, NoteDraft{Kind: models.NoteKindAudio, Title: "Lecture clip", Course: "Networks"})
	require.NoError(t, err)
	require.Equal(t, "recordings/take1.wav", stored.AudioURI)
	require.Equal(t, models.NoteKindAudio, stored.Kind)

	// The composer resets so the next note starts from scratch.
	require.Equal(t, recording.StateIdle, n.Rec.State())
	require.Empty(t, n.Rec.URI())
}

func TestNotes_AudioDraftWithoutRecordingFails(t *testing.T) {
	ctx := context.Background()
	n, _ := newTestNotes("")
	base := n.Len()

	_, err := n.SaveDraft(ctx, NoteDraft{Kind: models.NoteKindAudio})
	require.Error(t, err)
	require.Equal(t, base, n.Len())
}

func TestNotes_CloseComposerMidRecordingDiscards(t *testing.T) {
	ctx := context.Background()
	n, rec := newTestNotes("recordings/abandoned.wav")

	require.NoError(t, n.Rec.Start(ctx))
	n.CloseComposer(ctx)

	require.Equal(t, 1, rec.stopped)
	require.Equal(t, recording.StateIdle, n.Rec.State())
	require.Empty(t, n.Rec.URI())
}

func TestSchedule_AddFillsPlaceholdersAndFiltersByDay(t *testing.T) {
	s := NewSchedule(haptics.Discard{})

	stored := s.Add(models.Lecture{Day: "Thursday", StartTime: "09:00", EndTime: "10:00"})
	require.Equal(t, "Untitled lecture", stored.Title)
	require.Equal(t, "TBA", stored.Professor)
	require.NotEmpty(t, stored.ID)

	s.SelectDay("Thursday")
	visible := s.Visible()
	require.Len(t, visible, 1)
	require.Equal(t, stored.ID, visible[0].ID)

	// Other days stay untouched.
	require.NotEmpty(t, s.LecturesOn("Sunday"))
}

func TestSchedule_EditKeepsPosition(t *testing.T) {
	s := NewSchedule(haptics.Discard{})
	sunday := s.LecturesOn("Sunday")
	require.GreaterOrEqual(t, len(sunday), 2)

	s.Edit(sunday[0].ID, func(l *models.Lecture) { l.Location = "Moved online" })
	after := s.LecturesOn("Sunday")
	require.Equal(t, sunday[0].ID, after[0].ID)
	require.Equal(t, "Moved online", after[0].Location)
}

func TestDelivery_AcceptAndComplete(t *testing.T) {
	ctx := context.Background()
	d := NewDelivery(haptics.Discard{}, testLogger())

	open := d.AvailableOffers()
	require.NotEmpty(t, open)
	offer := open[0]
	before := d.Earnings().Total

	job, err := d.Accept(ctx, offer.ID)
	require.NoError(t, err)
	require.Equal(t, models.DeliveryInProgress, job.Status)
	require.Equal(t, offer.Price, job.Price)

	// The offer leaves the open list and the job tops the deliveries tab.
	for _, o := range d.AvailableOffers() {
		require.NotEqual(t, offer.ID, o.ID)
	}
	require.Equal(t, job.ID, d.Jobs()[0].ID)

	// Accepting the same offer twice fails softly.
	_, err = d.Accept(ctx, offer.ID)
	require.Error(t, err)

	require.NoError(t, d.Complete(ctx, job.ID))
	require.Equal(t, models.DeliveryCompleted, d.Jobs()[0].Status)
	require.Equal(t, before+offer.Price, d.Earnings().Total)

	// Completing twice does not double-credit.
	require.Error(t, d.Complete(ctx, job.ID))
	require.Equal(t, before+offer.Price, d.Earnings().Total)
}

func TestDelivery_CancelReopensOffer(t *testing.T) {
	ctx := context.Background()
	d := NewDelivery(haptics.Discard{}, testLogger())

	offer := d.AvailableOffers()[0]
	job, err := d.Accept(ctx, offer.ID)
	require.NoError(t, err)

	d.Cancel(job.ID)
	require.Equal(t, models.DeliveryCancelled, d.Jobs()[0].Status)

	var reopened bool
	for _, o := range d.AvailableOffers() {
		if o.ID == offer.ID {
			reopened = true
		}
	}
	require.True(t, reopened)
}

func TestDelivery_PostOfferPrepends(t *testing.T) {
	d := NewDelivery(haptics.Discard{}, testLogger())

	stored, err := d.PostOffer(models.DeliveryOffer{
		Title:            "Textbook drop-off",
		Price:            12,
		PickupLocation:   "Bookstore",
		DeliveryLocation: "Building 4",
	})
	require.NoError(t, err)
	require.Equal(t, stored.ID, d.Offers()[0].ID)
	require.True(t, d.Offers()[0].IsAvailable)

	_, err = d.PostOffer(models.DeliveryOffer{Title: "no locations", Price: 5})
	require.Error(t, err)
}
