// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package scores

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/tomtom215/jeososyal/internal/analytics"
	"github.com/tomtom215/jeososyal/internal/cache"
	"github.com/tomtom215/jeososyal/internal/dataset"
	"github.com/tomtom215/jeososyal/internal/logging"
	"github.com/tomtom215/jeososyal/internal/models"
	"github.com/tomtom215/jeososyal/internal/upstream"
)

// Score sources reported alongside results.
const (
	SourceLocal    = "local"
	SourceUpstream = "upstream"
	SourceNone     = "none"
)

// Result is a computed score list for one hashtag set.
type Result struct {
	Scores []models.ProvinceScore
	Source string
}

// Lookup indexes the result by province ID.
func (r Result) Lookup() models.ScoreLookup {
	return models.NewScoreLookup(r.Scores)
}

// Provider computes hashtag relevance scores, either locally from the dataset
// counters or through the backend. Backend failures degrade to an empty
// result, so the map core always receives a usable lookup.
type Provider struct {
	remote upstream.API
	cache  *cache.Cache
}

// NewProvider creates a provider. A nil remote computes scores locally; a nil
// cache disables memoization.
func NewProvider(remote upstream.API, c *cache.Cache) *Provider {
	return &Provider{remote: remote, cache: c}
}

type cacheKey struct {
	Version  uint64   `json:"version"`
	Hashtags []string `json:"hashtags"`
}

// Scores returns the scores of every province in snap for the hashtag set.
// Only a canceled context is reported as an error.
func (p *Provider) Scores(ctx context.Context, snap *dataset.Snapshot, hashtags []string) (Result, error) {
	tags := canonicalHashtags(hashtags)
	if p.cache == nil {
		return p.compute(ctx, snap, tags)
	}

	key := cache.GenerateKey("scores", cacheKey{Version: snap.Version, Hashtags: tags})
	if cached, ok := p.cache.Get(key); ok {
		if r, typed := cached.(Result); typed {
			return r, nil
		}
	}

	r, err := p.compute(ctx, snap, tags)
	if err != nil {
		return Result{}, err
	}
	// A degraded result is not cached so the next request retries the backend
	if r.Source != SourceNone {
		p.cache.Set(key, r)
	}
	return r, nil
}

func (p *Provider) compute(ctx context.Context, snap *dataset.Snapshot, tags []string) (Result, error) {
	if p.remote == nil {
		return Result{Scores: analytics.HashtagScores(snap.Records, tags), Source: SourceLocal}, nil
	}

	remote, err := p.remote.HashtagScores(ctx, tags)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return Result{}, err
		}
		logging.Ctx(ctx).Warn().Err(err).Strs("hashtags", tags).
			Msg("Upstream hashtag scores unavailable, using empty score lookup")
		return Result{Scores: []models.ProvinceScore{}, Source: SourceNone}, nil
	}
	return Result{Scores: Translate(snap, remote), Source: SourceUpstream}, nil
}

// Translate maps backend scores onto local province IDs: by ID first, then by
// resolving the backend province name. Scores that match neither are dropped.
func Translate(snap *dataset.Snapshot, remote []upstream.RemoteScore) []models.ProvinceScore {
	out := make([]models.ProvinceScore, 0, len(remote))
	for _, rs := range remote {
		if p, err := snap.Province(rs.ProvinceID); err == nil {
			out = append(out, models.ProvinceScore{ProvinceID: p.ID, Score: rs.Score})
			continue
		}
		if rs.Name == "" || snap.Resolver == nil {
			continue
		}
		if p, ok := snap.Resolver.Resolve(rs.Name); ok {
			out = append(out, models.ProvinceScore{ProvinceID: p.ID, Score: rs.Score})
		}
	}
	return out
}

// canonicalHashtags trims, drops empties, dedupes and sorts
func canonicalHashtags(hashtags []string) []string {
	seen := make(map[string]struct{}, len(hashtags))
	out := make([]string, 0, len(hashtags))
	for _, h := range hashtags {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}
