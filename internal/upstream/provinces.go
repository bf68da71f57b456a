// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/jeososyal/internal/models"
)

// remoteProvince is one entry of the backend province listing. Hashtags are
// names ordered by count with the counts themselves omitted.
type remoteProvince struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Region      string                 `json:"region"`
	MainHashtag string                 `json:"mainHashtag"`
	Inclination string                 `json:"inclination"`
	Sentiment   models.SentimentCounts `json:"sentiment"`
	Hashtags    []string               `json:"hashtags"`
}

type remoteScore struct {
	ProvinceID string  `json:"provinceId"`
	Score      float64 `json:"score"`
}

type hashtagScoreRequest struct {
	Hashtags []string `json:"hashtags"`
}

// Ping verifies connectivity to the backend.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return ErrUpstreamDisabled
	}
	if err := c.call(ctx, "ping", http.MethodGet, "filters/", nil, nil); err != nil {
		return fmt.Errorf("failed to ping upstream: %w", err)
	}
	return nil
}

// ListProvinces fetches the backend province listing and converts it to
// records. The ordered hashtag list becomes synthetic descending counts so
// local ranking reproduces the backend order.
func (c *Client) ListProvinces(ctx context.Context) ([]models.ProvinceRecord, error) {
	if c == nil {
		return nil, ErrUpstreamDisabled
	}
	var remote []remoteProvince
	if err := c.call(ctx, "list_provinces", http.MethodGet, "provinces/", nil, &remote); err != nil {
		return nil, err
	}

	records := make([]models.ProvinceRecord, 0, len(remote))
	for i := range remote {
		p := &remote[i]
		name := strings.TrimSpace(p.Name)
		if p.ID == "" && name == "" {
			continue
		}
		if p.ID != "" && name != "" {
			c.names.Store(p.ID, name)
		}
		records = append(records, models.ProvinceRecord{
			ID:        p.ID,
			Name:      name,
			Region:    p.Region,
			Sentiment: p.Sentiment,
			Hashtags:  hashtagCounts(p.Hashtags),
		})
	}
	return records, nil
}

// hashtagCounts assigns n, n-1, ... 1 to an ordered list of n hashtags.
func hashtagCounts(ordered []string) map[string]float64 {
	if len(ordered) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(ordered))
	n := len(ordered)
	for i, tag := range ordered {
		if _, seen := counts[tag]; seen || tag == "" {
			continue
		}
		counts[tag] = float64(n - i)
	}
	return counts
}

// HashtagScores asks the backend to score every province against the given
// hashtags.
func (c *Client) HashtagScores(ctx context.Context, hashtags []string) ([]RemoteScore, error) {
	if c == nil {
		return nil, ErrUpstreamDisabled
	}
	if hashtags == nil {
		hashtags = []string{}
	}
	var remote []remoteScore
	err := c.call(ctx, "hashtag_scores", http.MethodPost, "provinces/hashtag-scores/",
		hashtagScoreRequest{Hashtags: hashtags}, &remote)
	if err != nil {
		return nil, err
	}

	scores := make([]RemoteScore, 0, len(remote))
	for _, s := range remote {
		if s.ProvinceID == "" {
			continue
		}
		score := RemoteScore{ProvinceID: s.ProvinceID, Score: s.Score}
		if name, ok := c.names.Load(s.ProvinceID); ok {
			score.Name = name.(string)
		}
		scores = append(scores, score)
	}
	return scores, nil
}
