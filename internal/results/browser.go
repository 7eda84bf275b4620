// Package results holds the read path over persisted debates: the
// summary list, detail selection, and the projections the TUI charts
// are drawn from.
package results

import (
	"context"

	"github.com/debaite/podium/internal/api"
	"github.com/debaite/podium/internal/errors"
	"github.com/debaite/podium/internal/logging"
)

// Browser loads result summaries and details. Detail fetches are tagged
// with a monotonic sequence number so overlapping selections cannot
// apply out of order: callers pass the tag back to Accept and only the
// latest issued tag wins.
type Browser struct {
	client api.Client
	log    *logging.Logger

	Summaries []api.ResultSummary
	Detail    *api.ResultDetail

	seq      int
	accepted int
}

// NewBrowser creates a browser over the given backend client.
func NewBrowser(client api.Client, log *logging.Logger) *Browser {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Browser{client: client, log: log, accepted: -1}
}

// FetchSummaries loads the result list in server order without
// touching browser state, so it can run off the update loop.
func (b *Browser) FetchSummaries(ctx context.Context) ([]api.ResultSummary, error) {
	summaries, err := b.client.ListResults(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list results")
	}
	b.log.Debug("results listed", "count", len(summaries))
	return summaries, nil
}

// LoadSummaries fetches the result list and stores it. On failure the
// current list is left unmodified.
func (b *Browser) LoadSummaries(ctx context.Context) error {
	summaries, err := b.FetchSummaries(ctx)
	if err != nil {
		return err
	}
	b.Summaries = summaries
	return nil
}

// Select issues a detail fetch tag for a result id. The tag must be
// handed back to Accept together with the fetched detail.
func (b *Browser) Select(id string) (tag int) {
	b.seq++
	b.log.Debug("result selected", "result_id", id, "tag", b.seq)
	return b.seq
}

// FetchDetail loads the detail for one result. It is safe to call
// concurrently with newer selections; ordering is resolved by Accept.
func (b *Browser) FetchDetail(ctx context.Context, id string) (*api.ResultDetail, error) {
	detail, err := b.client.GetResult(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load result %s", id)
	}
	return detail, nil
}

// Accept applies a fetched detail if its tag is still the latest
// selection. Stale responses are dropped and reported false.
func (b *Browser) Accept(tag int, detail *api.ResultDetail) bool {
	if tag != b.seq || tag <= b.accepted {
		b.log.Debug("stale detail response dropped", "tag", tag, "latest", b.seq)
		return false
	}
	b.accepted = tag
	b.Detail = detail
	return true
}
