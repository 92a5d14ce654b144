package app

import (
	"context"
	"fmt"

	"github.com/aalmasoud/unilife/internal/screens"
)

// ShowHome prints the dashboard summary.
func (a *App) ShowHome(ctx context.Context) error {
	a.nav.Navigate(screens.ScreenHome, nil)
	counts := a.home.Counts()

	fmt.Fprintf(a.out, "Lectures: %d   Notes: %d   Files: %d   Earnings: %.2f SAR\n",
		counts.Lectures, counts.Notes, counts.Files, counts.TotalEarnings)

	day := a.schedule.Day()
	fmt.Fprintf(a.out, "Schedule for %s:\n", day)
	for _, l := range a.home.TodaysLectures(day) {
		fmt.Fprintf(a.out, "  %s-%s  %s (%s)\n", l.StartTime, l.EndTime, l.Title, l.Location)
	}
	return nil
}
