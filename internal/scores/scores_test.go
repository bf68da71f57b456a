// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package scores

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tomtom215/jeososyal/internal/cache"
	"github.com/tomtom215/jeososyal/internal/dataset"
	"github.com/tomtom215/jeososyal/internal/models"
	"github.com/tomtom215/jeososyal/internal/upstream"
)

type fakeRemote struct {
	scores []upstream.RemoteScore
	err    error
	calls  int
}

func (f *fakeRemote) Ping(context.Context) error { return f.err }

func (f *fakeRemote) ListProvinces(context.Context) ([]models.ProvinceRecord, error) {
	return nil, f.err
}

func (f *fakeRemote) HashtagScores(context.Context, []string) ([]upstream.RemoteScore, error) {
	f.calls++
	return f.scores, f.err
}

func testSnapshot(t *testing.T) *dataset.Snapshot {
	t.Helper()
	store := dataset.NewStore(nil)
	snap, err := store.Replace([]models.ProvinceRecord{
		{
			ID: "34", Name: "İstanbul", Region: models.RegionMarmara,
			Sentiment: models.SentimentCounts{Positive: 7, Neutral: 2, Negative: 1},
			Hashtags:  map[string]float64{"#deprem": 10, "#trafik": 5},
		},
		{
			ID: "06", Name: "Ankara", Region: models.RegionCentralAnatolia,
			Sentiment: models.SentimentCounts{Positive: 1, Neutral: 1, Negative: 1},
			Hashtags:  map[string]float64{"#meclis": 3},
		},
	}, dataset.SourceSeed)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	return snap
}

func TestProvider_Local(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	r, err := NewProvider(nil, nil).Scores(context.Background(), snap, []string{"#deprem"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Source != SourceLocal {
		t.Errorf("Source = %q, want local", r.Source)
	}
	lookup := r.Lookup()
	if got, _ := lookup.Score("34"); got != 1.0 {
		t.Errorf("İstanbul score = %v, want 1.0", got)
	}
	if got, ok := lookup.Score("06"); !ok || got != 0 {
		t.Errorf("Ankara score = %v (present %v), want 0", got, ok)
	}
}

func TestProvider_UpstreamTranslatesIDs(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	remote := &fakeRemote{scores: []upstream.RemoteScore{
		{ProvinceID: "34", Score: 0.9},
		{ProvinceID: "uuid-ankara", Name: "ankara", Score: 0.4},
		{ProvinceID: "uuid-nowhere", Name: "Atlantis", Score: 2},
		{ProvinceID: "uuid-unnamed", Score: 2},
	}}

	r, err := NewProvider(remote, nil).Scores(context.Background(), snap, []string{"#x"})
	if err != nil {
		t.Fatal(err)
	}
	want := []models.ProvinceScore{{ProvinceID: "34", Score: 0.9}, {ProvinceID: "06", Score: 0.4}}
	if !reflect.DeepEqual(r.Scores, want) {
		t.Errorf("Scores = %+v, want %+v", r.Scores, want)
	}
	if r.Source != SourceUpstream {
		t.Errorf("Source = %q, want upstream", r.Source)
	}
}

func TestProvider_UpstreamFailureDegrades(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	remote := &fakeRemote{err: errors.New("connection refused")}
	c := cache.New("scores-test", time.Minute)
	defer c.Close()
	p := NewProvider(remote, c)

	for i := 0; i < 2; i++ {
		r, err := p.Scores(context.Background(), snap, []string{"#x"})
		if err != nil {
			t.Fatalf("Scores() error = %v, want degraded result", err)
		}
		if r.Source != SourceNone || len(r.Scores) != 0 {
			t.Errorf("Result = %+v, want empty degraded result", r)
		}
	}
	if remote.calls != 2 {
		t.Errorf("calls = %d, degraded results must not be cached", remote.calls)
	}
}

func TestProvider_Canceled(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	remote := &fakeRemote{err: context.Canceled}
	if _, err := NewProvider(remote, nil).Scores(context.Background(), snap, []string{"#x"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Scores() error = %v, want context.Canceled", err)
	}
}

func TestProvider_CachesByCanonicalHashtags(t *testing.T) {
	t.Parallel()

	snap := testSnapshot(t)
	remote := &fakeRemote{scores: []upstream.RemoteScore{{ProvinceID: "34", Score: 1}}}
	c := cache.New("scores-test", time.Minute)
	defer c.Close()
	p := NewProvider(remote, c)

	if _, err := p.Scores(context.Background(), snap, []string{"#b", "#a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Scores(context.Background(), snap, []string{" #a", "#b", "#a", ""}); err != nil {
		t.Fatal(err)
	}
	if remote.calls != 1 {
		t.Errorf("calls = %d, want 1 (second request served from cache)", remote.calls)
	}
}

func TestCanonicalHashtags(t *testing.T) {
	t.Parallel()

	got := canonicalHashtags([]string{"#b", " #a ", "", "#b"})
	want := []string{"#a", "#b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("canonicalHashtags() = %v, want %v", got, want)
	}
}
