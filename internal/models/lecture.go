package models

// Weekdays in the order the schedule tabs show them.
var Days = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

const defaultLectureColor = "#4A90E2"

// Lecture is one entry in the weekly schedule. Day is the filter key.
type Lecture struct {
	ID        string
	Title     string
	Professor string
	Location  string
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Day       string
	Color     string
}

// Normalize fills placeholder values for fields the user left empty.
// The schedule accepts partially-filled drafts instead of rejecting them.
func (l *Lecture) Normalize() {
	if l.Title == "" {
		l.Title = "Untitled lecture"
	}
	if l.Professor == "" {
		l.Professor = "TBA"
	}
	if l.Location == "" {
		l.Location = "TBA"
	}
	if l.Color == "" {
		l.Color = defaultLectureColor
	}
}
