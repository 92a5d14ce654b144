package models

import (
	"fmt"
	"time"

	"github.com/aalmasoud/unilife/internal/common"
)

// DeliveryStatus tracks an accepted delivery job.
type DeliveryStatus string

const (
	DeliveryInProgress DeliveryStatus = "in_progress"
	DeliveryCompleted  DeliveryStatus = "completed"
	DeliveryCancelled  DeliveryStatus = "cancelled"
)

// DeliveryOffer is a gig posted on the marketplace tab.
type DeliveryOffer struct {
	ID                  string
	Title               string
	Description         string
	Price               float64
	DistanceKm          float64
	EstimatedMinutes    int
	PickupLocation      string
	DeliveryLocation    string
	IsAvailable         bool
	CourierName         string
	CourierRating       float64
	CompletedDeliveries int
	CreatedAt           time.Time
}

// Validate checks the fields required to post an offer.
func (o DeliveryOffer) Validate() error {
	if o.Title == "" || o.PickupLocation == "" || o.DeliveryLocation == "" {
		return fmt.Errorf("%w: title, pickup and delivery locations are required", common.ErrValidation)
	}
	if o.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", common.ErrValidation)
	}
	return nil
}

// DeliveryJob is an offer the student accepted.
type DeliveryJob struct {
	ID          string
	OfferID     string
	Title       string
	Price       float64
	Status      DeliveryStatus
	StartedAt   time.Time
	CompletedAt time.Time
}

// Earnings is the summary shown on the earnings tab.
type Earnings struct {
	Today     float64
	ThisWeek  float64
	ThisMonth float64
	Total     float64
}

// AddCompleted credits a finished delivery to every bucket.
func (e *Earnings) AddCompleted(price float64) {
	e.Today += price
	e.ThisWeek += price
	e.ThisMonth += price
	e.Total += price
}
