package models

import "encoding/json"

// Profile is the single student document kept in the document store.
// Field names double as the stored document keys.
type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	University string `json:"university"`
	Major      string `json:"major"`
	Year       int    `json:"year"`
	IsPremium  bool   `json:"isPremium"`
	JoinDate   string `json:"joinDate"`

	TotalLectures int     `json:"totalLectures"`
	TotalNotes    int     `json:"totalNotes"`
	TotalFiles    int     `json:"totalFiles"`
	TotalEarnings float64 `json:"totalEarnings"`

	NotificationsEnabled bool `json:"notificationsEnabled"`
	LectureReminders     bool `json:"lectureReminders"`
	TaskReminders        bool `json:"taskReminders"`
	DeliveryUpdates      bool `json:"deliveryUpdates"`
}

// DefaultProfile is the document written on first load when no profile
// exists yet.
func DefaultProfile() Profile {
	return Profile{
		Name:                 "Ahmed Mohammed",
		Email:                "ahmed.student@university.edu.sa",
		University:           "King Saud University",
		Major:                "Computer Engineering",
		Year:                 3,
		IsPremium:            false,
		JoinDate:             "2023-09-01",
		TotalLectures:        45,
		TotalNotes:           128,
		TotalFiles:           67,
		TotalEarnings:        1250,
		NotificationsEnabled: true,
		LectureReminders:     true,
		TaskReminders:        true,
		DeliveryUpdates:      false,
	}
}

// Fields flattens the profile into a document-store field map.
func (p Profile) Fields() map[string]any {
	b, _ := json.Marshal(p)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// ProfileFromFields builds a Profile from a stored field map. Unknown keys
// are ignored; missing keys keep their zero values.
func ProfileFromFields(fields map[string]any) (Profile, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
