package app

import (
	"context"
	"fmt"

	"github.com/aalmasoud/unilife/internal/screens"
)

// ShowOffers lists the open delivery offers.
func (a *App) ShowOffers(ctx context.Context) error {
	a.nav.Navigate(screens.ScreenDelivery, nil)
	a.delivery.SelectTab(screens.TabOffers)

	for _, o := range a.delivery.AvailableOffers() {
		fmt.Fprintf(a.out, "  [%s] %s — %.2f SAR, %.1f km, ~%d min (%s → %s)\n",
			o.ID, o.Title, o.Price, o.DistanceKm, o.EstimatedMinutes, o.PickupLocation, o.DeliveryLocation)
	}
	return nil
}

// AcceptOffer takes an open offer and starts a delivery job.
func (a *App) AcceptOffer(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Offer id", a.out)
	if err != nil {
		return err
	}
	job, err := a.delivery.Accept(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Could not accept:", err)
		return err
	}
	fmt.Fprintf(a.out, "Accepted %q — job [%s]\n", job.Title, job.ID)
	return nil
}

// CompleteJob finishes an in-progress delivery.
func (a *App) CompleteJob(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Job id", a.out)
	if err != nil {
		return err
	}
	if err := a.delivery.Complete(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Could not complete:", err)
		return err
	}
	fmt.Fprintf(a.out, "Done. Total earned: %.2f SAR\n", a.delivery.Earnings().Total)
	return nil
}

// ShowEarnings prints the earnings summary and the student's deliveries.
func (a *App) ShowEarnings(ctx context.Context) error {
	a.delivery.SelectTab(screens.TabEarnings)
	e := a.delivery.Earnings()
	fmt.Fprintf(a.out, "Today %.2f | Week %.2f | Month %.2f | Total %.2f SAR\n",
		e.Today, e.ThisWeek, e.ThisMonth, e.Total)

	for _, j := range a.delivery.Jobs() {
		fmt.Fprintf(a.out, "  [%s] %s — %.2f SAR (%s)\n", j.ID, j.Title, j.Price, j.Status)
	}
	return nil
}
