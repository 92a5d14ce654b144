package screens

import (
	"time"

	"github.com/aalmasoud/unilife/internal/models"
)

// Session seed data. The app is session-local, so every launch starts from
// the same lists the way the original demo does.

func seedLectures() []models.Lecture {
	return []models.Lecture{
		{ID: "lec-1", Title: "Data Structures", Professor: "Dr. Salem Al-Otaibi", Location: "Building 31, Room 204", StartTime: "09:00", EndTime: "10:30", Day: "Sunday", Color: "#4A90E2"},
		{ID: "lec-2", Title: "Operating Systems", Professor: "Dr. Huda Al-Qahtani", Location: "Building 31, Room 110", StartTime: "11:00", EndTime: "12:30", Day: "Sunday", Color: "#E94B3C"},
		{ID: "lec-3", Title: "Linear Algebra", Professor: "Dr. Fahad Al-Harbi", Location: "Building 4, Room 12", StartTime: "08:00", EndTime: "09:30", Day: "Monday", Color: "#50C878"},
		{ID: "lec-4", Title: "Computer Networks", Professor: "Dr. Salem Al-Otaibi", Location: "Building 31, Room 204", StartTime: "13:00", EndTime: "14:30", Day: "Tuesday", Color: "#9B59B6"},
		{ID: "lec-5", Title: "Technical Writing", Professor: "TBA", Location: "Building 17, Room 3", StartTime: "10:00", EndTime: "11:00", Day: "Wednesday", Color: "#F5A623"},
	}
}

func seedNotes() []models.Note {
	return []models.Note{
		{
			ID: "note-1", Kind: models.NoteKindText,
			Title: "Binary trees recap", Course: "Data Structures",
			Content:     "AVL rotations: LL, RR, LR, RL. Rebalance after every insert.",
			IsImportant: true,
			CreatedAt:   time.Date(2024, 3, 10, 14, 20, 0, 0, time.UTC),
		},
		{
			ID: "note-2", Kind: models.NoteKindText,
			Title: "Scheduling algorithms", Course: "Operating Systems",
			Content:   "Round robin quantum tradeoffs; SJF is optimal for mean waiting time.",
			CreatedAt: time.Date(2024, 3, 11, 9, 5, 0, 0, time.UTC),
		},
		{
			ID: "note-3", Kind: models.NoteKindAudio,
			Title: "Lecture recording", Course: "Computer Networks",
			AudioURI: "recordings/seed-networks.wav", DurationSeconds: 185,
			CreatedAt: time.Date(2024, 3, 12, 13, 45, 0, 0, time.UTC),
		},
	}
}

func seedFiles() []models.CourseFile {
	return []models.CourseFile{
		{
			ID: "file-1", Name: "Chapter 5 - Trees.pdf", Type: models.FileTypePDF,
			SizeBytes: 2_411_520, URI: "files/ch5-trees.pdf",
			Course: "Data Structures", Chapter: "Chapter 5",
			UploadedAt: time.Date(2024, 3, 8, 16, 0, 0, 0, time.UTC),
			IsProcessed: true, Summary: "Tree traversals, BSTs and balancing.",
		},
		{
			ID: "file-2", Name: "Midterm review.pdf", Type: models.FileTypePDF,
			SizeBytes: 1_048_576, URI: "files/os-midterm.pdf",
			Course: "Operating Systems", Chapter: "Review",
			UploadedAt: time.Date(2024, 3, 9, 12, 30, 0, 0, time.UTC),
		},
		{
			ID: "file-3", Name: "Whiteboard photo.png", Type: models.FileTypeImage,
			SizeBytes: 3_670_016, URI: "files/board.png",
			Course: "Linear Algebra", Chapter: "Chapter 2",
			UploadedAt: time.Date(2024, 3, 9, 10, 15, 0, 0, time.UTC),
		},
	}
}

func seedOffers() []models.DeliveryOffer {
	return []models.DeliveryOffer{
		{
			ID: "offer-1", Title: "Coffee from campus cafe",
			Description: "Two lattes to the library, second floor.",
			Price: 15, DistanceKm: 0.8, EstimatedMinutes: 15,
			PickupLocation: "Campus Cafe", DeliveryLocation: "Central Library",
			IsAvailable: true, CourierName: "Khalid", CourierRating: 4.8, CompletedDeliveries: 112,
			CreatedAt: time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "offer-2", Title: "Print and deliver lab report",
			Description: "20 pages, color, stapled.",
			Price: 25, DistanceKm: 1.5, EstimatedMinutes: 30,
			PickupLocation: "Print Shop, Building 2", DeliveryLocation: "Building 31",
			IsAvailable: true, CourierName: "Sara", CourierRating: 4.9, CompletedDeliveries: 89,
			CreatedAt: time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			ID: "offer-3", Title: "Lunch pickup",
			Description: "Shawarma meal from the food court.",
			Price: 20, DistanceKm: 1.1, EstimatedMinutes: 25,
			PickupLocation: "Food Court", DeliveryLocation: "Dorm Block C",
			IsAvailable: false, CourierName: "Omar", CourierRating: 4.6, CompletedDeliveries: 54,
			CreatedAt: time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC),
		},
	}
}

func seedEarnings() models.Earnings {
	return models.Earnings{Today: 35, ThisWeek: 180, ThisMonth: 640, Total: 1250}
}
