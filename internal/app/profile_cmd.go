package app

import (
	"context"
	"fmt"

	"github.com/aalmasoud/unilife/internal/screens"
)

// ShowProfile loads and prints the student document.
func (a *App) ShowProfile(ctx context.Context) error {
	a.nav.Navigate(screens.ScreenProfile, nil)

	p, err := a.profile.Load(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}

	premium := "free"
	if p.IsPremium {
		premium = "premium"
	}
	fmt.Fprintf(a.out, "%s <%s> — %s, %s, year %d (%s)\n", p.Name, p.Email, p.University, p.Major, p.Year, premium)
	fmt.Fprintf(a.out, "Lectures %d | Notes %d | Files %d | Earnings %.2f SAR\n",
		p.TotalLectures, p.TotalNotes, p.TotalFiles, p.TotalEarnings)
	fmt.Fprintf(a.out, "Notifications %v | Lecture reminders %v | Task reminders %v | Delivery updates %v\n",
		p.NotificationsEnabled, p.LectureReminders, p.TaskReminders, p.DeliveryUpdates)
	return nil
}

// EditProfile prompts the edit form; empty answers keep the stored values.
func (a *App) EditProfile(ctx context.Context) error {
	edits := screens.ProfileEdits{}
	var err error
	if edits.Name, err = GetSimpleText(a.reader, "Name (empty keeps current)", a.out); err != nil {
		return err
	}
	if edits.Email, err = GetSimpleText(a.reader, "Email (empty keeps current)", a.out); err != nil {
		return err
	}
	if edits.University, err = GetSimpleText(a.reader, "University (empty keeps current)", a.out); err != nil {
		return err
	}
	if edits.Major, err = GetSimpleText(a.reader, "Major (empty keeps current)", a.out); err != nil {
		return err
	}
	if edits.Year, err = GetSimpleText(a.reader, "Year (empty keeps current)", a.out); err != nil {
		return err
	}

	if err := a.profile.SaveEdits(ctx, edits); err != nil {
		fmt.Fprintln(a.out, "Could not save profile:", err)
		return err
	}
	fmt.Fprintln(a.out, "Profile saved")
	return nil
}

// ToggleNotification flips one notification switch and saves it right away.
func (a *App) ToggleNotification(ctx context.Context) error {
	field, err := GetSimpleText(a.reader, "Switch (notificationsEnabled/lectureReminders/taskReminders/deliveryUpdates)", a.out)
	if err != nil {
		return err
	}
	value, err := GetYesNo(a.reader, "Enable?", a.out)
	if err != nil {
		return err
	}

	if err := a.profile.SetToggle(ctx, field, value); err != nil {
		fmt.Fprintln(a.out, "Could not save switch:", err)
		return err
	}
	fmt.Fprintf(a.out, "%s = %v\n", field, value)
	return nil
}

// Subscribe picks a premium plan and activates it.
func (a *App) Subscribe(ctx context.Context) error {
	a.nav.Navigate(screens.ScreenPremium, nil)

	for _, plan := range screens.Plans() {
		extra := ""
		if plan.Savings != "" {
			extra = " (" + plan.Savings + ")"
		}
		fmt.Fprintf(a.out, "  %s — %.2f SAR/year%s\n", plan.ID, plan.PricePerYear, extra)
	}
	id, err := GetSimpleText(a.reader, "Plan (empty keeps "+a.premium.Selected()+")", a.out)
	if err != nil {
		return err
	}
	if id != "" {
		if err := a.premium.SelectPlan(id); err != nil {
			fmt.Fprintln(a.out, err)
			return err
		}
	}

	if err := a.premium.Subscribe(ctx); err != nil {
		fmt.Fprintln(a.out, "Subscription failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Premium active")
	return nil
}
