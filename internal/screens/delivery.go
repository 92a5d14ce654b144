package screens

import (
	"context"
	"fmt"
	"time"

	"github.com/aalmasoud/unilife/internal/collection"
	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/models"
)

// DeliveryTab is one of the delivery screen's tabs.
type DeliveryTab string

const (
	TabOffers     DeliveryTab = "offers"
	TabEarnings   DeliveryTab = "earnings"
	TabDeliveries DeliveryTab = "deliveries"
)

// Delivery is the campus delivery screen: a marketplace of offers, the
// student's accepted jobs and an earnings summary. Offers and jobs both
// show newest first.
type Delivery struct {
	offers  *collection.Editor[models.DeliveryOffer]
	jobs    *collection.Editor[models.DeliveryJob]
	haptics haptics.Sink
	log     logging.Logger

	tab      DeliveryTab
	earnings models.Earnings
}

func NewDelivery(sink haptics.Sink, log logging.Logger) *Delivery {
	offers := collection.New(
		collection.Prepend,
		func(o models.DeliveryOffer) string { return o.ID },
		func(o *models.DeliveryOffer, id string) { o.ID = id },
		func(o *models.DeliveryOffer) error { return o.Validate() },
	)
	offers.Seed(seedOffers())

	jobs := collection.New[models.DeliveryJob](
		collection.Prepend,
		func(j models.DeliveryJob) string { return j.ID },
		func(j *models.DeliveryJob, id string) { j.ID = id },
		nil,
	)

	return &Delivery{
		offers:   offers,
		jobs:     jobs,
		haptics:  sink,
		log:      log,
		tab:      TabOffers,
		earnings: seedEarnings(),
	}
}

// SelectTab switches the active tab.
func (d *Delivery) SelectTab(tab DeliveryTab) {
	d.tab = tab
	d.haptics.Pulse(haptics.Selection)
}

// Tab returns the active tab.
func (d *Delivery) Tab() DeliveryTab { return d.tab }

// AvailableOffers lists the offers still open for acceptance, newest first.
func (d *Delivery) AvailableOffers() []models.DeliveryOffer {
	return d.offers.Filter(func(o models.DeliveryOffer) bool { return o.IsAvailable })
}

// Offers lists every offer regardless of availability.
func (d *Delivery) Offers() []models.DeliveryOffer { return d.offers.All() }

// Jobs lists the student's accepted deliveries, newest first.
func (d *Delivery) Jobs() []models.DeliveryJob { return d.jobs.All() }

// Earnings returns the current summary.
func (d *Delivery) Earnings() models.Earnings { return d.earnings }

// PostOffer publishes a new offer at the top of the marketplace.
func (d *Delivery) PostOffer(draft models.DeliveryOffer) (models.DeliveryOffer, error) {
	draft.IsAvailable = true
	draft.CreatedAt = time.Now()
	stored, err := d.offers.Add(draft)
	if err != nil {
		d.haptics.Pulse(haptics.Error)
		return models.DeliveryOffer{}, fmt.Errorf("posting offer: %w", err)
	}
	d.haptics.Pulse(haptics.Success)
	return stored, nil
}

// Accept takes an open offer: it becomes unavailable and an in-progress
// job is prepended to the student's deliveries.
func (d *Delivery) Accept(ctx context.Context, offerID string) (models.DeliveryJob, error) {
	offer, ok := d.offers.Get(offerID)
	if !ok || !offer.IsAvailable {
		return models.DeliveryJob{}, fmt.Errorf("%w: offer %s is not open", common.ErrNotFound, offerID)
	}

	d.offers.Update(offerID, func(o *models.DeliveryOffer) { o.IsAvailable = false })
	job, err := d.jobs.Add(models.DeliveryJob{
		OfferID:   offerID,
		Title:     offer.Title,
		Price:     offer.Price,
		Status:    models.DeliveryInProgress,
		StartedAt: time.Now(),
	})
	if err != nil {
		return models.DeliveryJob{}, err
	}

	d.haptics.Pulse(haptics.Success)
	d.log.Debug(ctx, "offer accepted", "offer", offerID, "job", job.ID)
	return job, nil
}

// Complete finishes an in-progress job and credits its price to the
// earnings summary.
func (d *Delivery) Complete(ctx context.Context, jobID string) error {
	job, ok := d.jobs.Get(jobID)
	if !ok || job.Status != models.DeliveryInProgress {
		return fmt.Errorf("%w: job %s is not in progress", common.ErrNotFound, jobID)
	}

	d.jobs.Update(jobID, func(j *models.DeliveryJob) {
		j.Status = models.DeliveryCompleted
		j.CompletedAt = time.Now()
	})
	d.earnings.AddCompleted(job.Price)

	d.haptics.Pulse(haptics.Success)
	d.log.Debug(ctx, "delivery completed", "job", jobID, "price", job.Price)
	return nil
}

// Cancel abandons an in-progress job and reopens its offer.
func (d *Delivery) Cancel(jobID string) {
	job, ok := d.jobs.Get(jobID)
	if !ok || job.Status != models.DeliveryInProgress {
		return
	}
	d.jobs.Update(jobID, func(j *models.DeliveryJob) { j.Status = models.DeliveryCancelled })
	d.offers.Update(job.OfferID, func(o *models.DeliveryOffer) { o.IsAvailable = true })
	d.haptics.Pulse(haptics.Warning)
}
