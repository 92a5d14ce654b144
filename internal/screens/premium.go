package screens

import (
	"context"
	"fmt"

	"github.com/aalmasoud/unilife/internal/common"
	"github.com/aalmasoud/unilife/internal/haptics"
	"github.com/aalmasoud/unilife/internal/logging"
	"github.com/aalmasoud/unilife/internal/profile"
)

// Plan is a premium subscription option.
type Plan struct {
	ID           string
	Name         string
	PricePerYear float64
	Savings      string
}

// Plans the premium screen offers, monthly first.
func Plans() []Plan {
	return []Plan{
		{ID: "monthly", Name: "Monthly", PricePerYear: 19.99 * 12},
		{ID: "yearly", Name: "Yearly", PricePerYear: 149.99, Savings: "save 37%"},
	}
}

// Premium is the subscription screen. Subscribing is simulated: it merge-
// writes the premium flag and nothing else.
type Premium struct {
	profiles *profile.Store
	haptics  haptics.Sink
	log      logging.Logger

	selected string
}

func NewPremium(profiles *profile.Store, sink haptics.Sink, log logging.Logger) *Premium {
	return &Premium{profiles: profiles, haptics: sink, log: log, selected: "yearly"}
}

// SelectPlan picks one of the offered plans.
func (p *Premium) SelectPlan(id string) error {
	for _, plan := range Plans() {
		if plan.ID == id {
			p.selected = id
			p.haptics.Pulse(haptics.Selection)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown plan %q", common.ErrValidation, id)
}

// Selected returns the chosen plan id.
func (p *Premium) Selected() string { return p.selected }

// Subscribe flips the profile's premium flag through a single merge-write.
func (p *Premium) Subscribe(ctx context.Context) error {
	if err := p.profiles.Save(ctx, map[string]any{"isPremium": true}); err != nil {
		p.haptics.Pulse(haptics.Error)
		return err
	}
	p.haptics.Pulse(haptics.Success)
	p.log.Info(ctx, "premium subscription activated", "plan", p.selected)
	return nil
}
