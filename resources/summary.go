package resources

import (
	"context"

	"github.com/supakorn-kn/go-dashboard/objects"
	"golang.org/x/sync/errgroup"
)

// Summary fills the dashboard cards: the metrics endpoint plus the sizes of
// the inbox collections.
type Summary struct {
	Counts      []objects.Count `json:"counts"`
	Contacts    int             `json:"contacts"`
	ReachUs     int             `json:"reachus"`
	Subscribers int             `json:"subscribers"`
}

// Summarize fetches every part of the Summary concurrently. The first
// failure cancels the rest.
func (c *Catalog) Summarize(ctx context.Context) (Summary, error) {

	var summary Summary

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		counts, err := c.Counts.List(groupCtx)
		summary.Counts = counts
		return err
	})

	group.Go(func() error {
		contacts, err := c.Contacts.List(groupCtx)
		summary.Contacts = len(contacts)
		return err
	})

	group.Go(func() error {
		reachUs, err := c.ReachUs.List(groupCtx)
		summary.ReachUs = len(reachUs)
		return err
	})

	group.Go(func() error {
		subscribers, err := c.Subscribers.List(groupCtx)
		summary.Subscribers = len(subscribers)
		return err
	})

	if err := group.Wait(); err != nil {
		return Summary{}, err
	}

	return summary, nil
}
