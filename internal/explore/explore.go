// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explore runs the search pipeline: it resolves candidate object IDs
// for a keyword, fetches and normalizes each candidate, applies the filters,
// and returns the survivors in candidate order together with the counts.
package explore

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/met-explorer/internal/artwork"
	"github.com/pdiddy/met-explorer/internal/collection"
	"github.com/pdiddy/met-explorer/internal/metrics"
	"github.com/pdiddy/met-explorer/pkg/types"
)

// Collection is the remote API the explorer reads from.
type Collection interface {
	Search(ctx context.Context, keyword string) (collection.SearchResponse, error)
	FetchDetail(ctx context.Context, id int) (artwork.RawRecord, error)
}

// Explorer holds the collaborators and limits for search runs. It keeps no
// state between runs.
type Explorer struct {
	client       Collection
	candidateCap int
	concurrency  int
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

// New returns an Explorer. A non-positive cap falls back to
// types.DefaultCandidateCap and a non-positive concurrency to 1. m may be nil.
func New(client Collection, cfg types.SearchConfig, logger zerolog.Logger, m *metrics.Metrics) *Explorer {
	limit := cfg.CandidateCap
	if limit <= 0 {
		limit = types.DefaultCandidateCap
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Explorer{
		client:       client,
		candidateCap: limit,
		concurrency:  concurrency,
		logger:       logger,
		metrics:      m,
	}
}

// Run executes one search. A failed search call is returned as the
// collection's *SearchError with an empty result; failed detail fetches are
// skipped and counted in SearchResult.Skipped. Invalid criteria (including
// an empty keyword) are rejected before any request is made.
func (e *Explorer) Run(ctx context.Context, criteria types.SearchCriteria) (types.SearchResult, error) {
	if err := criteria.Validate(); err != nil {
		return types.SearchResult{Artworks: []types.Artwork{}}, err
	}

	log := e.logger.With().Str("keyword", criteria.Keyword).Logger()
	result := types.SearchResult{
		Keyword:  criteria.Keyword,
		Artworks: []types.Artwork{},
	}

	sr, err := e.client.Search(ctx, criteria.Keyword)
	if err != nil {
		e.metrics.RecordSearchFailed()
		log.Error().Err(err).Msg("search failed")
		return result, err
	}

	result.TotalAvailable = sr.Total
	if sr.Total == 0 {
		e.metrics.RecordSearch(result)
		log.Info().Msg("no artworks found")
		return result, nil
	}

	candidates := capIDs(sr.ObjectIDs, e.candidateCap)
	result.CandidateCount = len(candidates)

	records, err := e.fetchAll(ctx, log, candidates)
	if err != nil {
		return types.SearchResult{Keyword: criteria.Keyword, Artworks: []types.Artwork{}}, err
	}

	for i, rec := range records {
		if !rec.ok {
			result.Skipped++
			continue
		}
		a := artwork.Normalize(rec.raw)
		a.ObjectID = candidates[i]
		if reason := artwork.Reject(a, criteria); reason != artwork.ReasonNone {
			log.Debug().Int("object_id", a.ObjectID).Str("reason", string(reason)).Msg("filtered out")
			continue
		}
		result.Artworks = append(result.Artworks, a)
	}

	e.metrics.RecordSearch(result)
	log.Info().
		Int("total", result.TotalAvailable).
		Int("candidates", result.CandidateCount).
		Int("skipped", result.Skipped).
		Int("shown", len(result.Artworks)).
		Msg("search complete")
	return result, nil
}

// capIDs returns the first limit IDs in server order.
func capIDs(ids []int, limit int) []int {
	if len(ids) > limit {
		ids = ids[:limit]
	}
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

type fetched struct {
	raw artwork.RawRecord
	ok  bool
}

// fetchAll fetches every candidate with at most e.concurrency requests in
// flight. Slot i always holds candidate i, so the merge keeps candidate
// order. A failed fetch leaves its slot empty; only context cancellation
// aborts the batch.
func (e *Explorer) fetchAll(ctx context.Context, log zerolog.Logger, ids []int) ([]fetched, error) {
	slots := make([]fetched, len(ids))

	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for i, id := range ids {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			start := time.Now()
			raw, err := e.client.FetchDetail(ctx, id)
			e.metrics.RecordDetailFetch(time.Since(start), err == nil)
			if err != nil {
				log.Warn().Err(err).Int("object_id", id).Msg("skipping object")
				return nil
			}
			slots[i] = fetched{raw: raw, ok: true}
			return nil
		})
	}
	// Workers never return errors; failures are recorded per slot.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}
