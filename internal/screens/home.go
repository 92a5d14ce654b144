package screens

import (
	"github.com/aalmasoud/unilife/internal/models"
	"github.com/aalmasoud/unilife/internal/navigation"
)

// Screen names as the navigator knows them.
const (
	ScreenHome     = "home"
	ScreenSchedule = "schedule"
	ScreenNotes    = "notes"
	ScreenFiles    = "files"
	ScreenDelivery = "delivery"
	ScreenProfile  = "profile"
	ScreenPremium  = "premium"
	ScreenLogin    = "login"
)

// HomeCounts is the dashboard summary row.
type HomeCounts struct {
	Lectures      int
	Notes         int
	Files         int
	TotalEarnings float64
}

// Home is the dashboard. It owns nothing itself; it aggregates the other
// screens and exposes the quick actions that deep-link into them.
type Home struct {
	schedule *Schedule
	notes    *Notes
	files    *Files
	delivery *Delivery
	nav      navigation.Navigator
}

func NewHome(schedule *Schedule, notes *Notes, files *Files, delivery *Delivery, nav navigation.Navigator) *Home {
	return &Home{schedule: schedule, notes: notes, files: files, delivery: delivery, nav: nav}
}

// Counts returns the live dashboard numbers.
func (h *Home) Counts() HomeCounts {
	return HomeCounts{
		Lectures:      h.schedule.Len(),
		Notes:         h.notes.Len(),
		Files:         h.files.Len(),
		TotalEarnings: h.delivery.Earnings().Total,
	}
}

// TodaysLectures returns the active day's schedule for the dashboard card.
func (h *Home) TodaysLectures(day string) []models.Lecture {
	return h.schedule.LecturesOn(day)
}

// Quick actions: each navigates with a mount flag the target consumes.

func (h *Home) OpenAddNote() {
	h.nav.Navigate(ScreenNotes, navigation.Params{"openAddModal": true})
}

func (h *Home) OpenUploadFile() {
	h.nav.Navigate(ScreenFiles, navigation.Params{"openUploadModal": true})
}

func (h *Home) OpenAddLecture() {
	h.nav.Navigate(ScreenSchedule, navigation.Params{"openAddModal": true})
}

func (h *Home) OpenDelivery() {
	h.nav.Navigate(ScreenDelivery, nil)
}
