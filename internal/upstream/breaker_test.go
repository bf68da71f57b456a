// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package upstream

import (
	"context"
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/jeososyal/internal/models"
)

type fakeAPI struct {
	err     error
	records []models.ProvinceRecord
	scores  []RemoteScore
	calls   int
}

func (f *fakeAPI) Ping(context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeAPI) ListProvinces(context.Context) ([]models.ProvinceRecord, error) {
	f.calls++
	return f.records, f.err
}

func (f *fakeAPI) HashtagScores(context.Context, []string) ([]RemoteScore, error) {
	f.calls++
	return f.scores, f.err
}

func TestBreakerClient_PassesResults(t *testing.T) {
	fake := &fakeAPI{
		records: []models.ProvinceRecord{{ID: "34", Name: "İstanbul"}},
		scores:  []RemoteScore{{ProvinceID: "34", Score: 0.5}},
	}
	b := NewBreakerClient(fake)

	records, err := b.ListProvinces(context.Background())
	if err != nil || len(records) != 1 || records[0].ID != "34" {
		t.Fatalf("ListProvinces() = %v, %v", records, err)
	}
	scores, err := b.HashtagScores(context.Background(), []string{"#a"})
	if err != nil || len(scores) != 1 || scores[0].Score != 0.5 {
		t.Fatalf("HashtagScores() = %v, %v", scores, err)
	}
	if err := b.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() = %v", err)
	}
	if b.State() != "closed" {
		t.Errorf("State() = %q, want closed", b.State())
	}
}

func TestBreakerClient_OpensAfterFailures(t *testing.T) {
	fake := &fakeAPI{err: errors.New("backend down")}
	b := NewBreakerClient(fake)

	for i := 0; i < 10; i++ {
		if _, err := b.ListProvinces(context.Background()); err == nil {
			t.Fatal("expected failure")
		}
	}
	if b.cb.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open after 10 failures", b.cb.State())
	}

	calls := fake.calls
	_, err := b.ListProvinces(context.Background())
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want ErrOpenState", err)
	}
	if fake.calls != calls {
		t.Error("open breaker should not call the backend")
	}
}

func TestBreakerClient_CanceledIsNotFailure(t *testing.T) {
	fake := &fakeAPI{err: context.Canceled}
	b := NewBreakerClient(fake)

	for i := 0; i < 12; i++ {
		_ = b.Ping(context.Background())
	}
	if b.cb.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, canceled calls must not trip the breaker", b.cb.State())
	}
}

func TestStateConversions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		f     float64
		s     string
	}{
		{gobreaker.StateClosed, 0, "closed"},
		{gobreaker.StateHalfOpen, 1, "half-open"},
		{gobreaker.StateOpen, 2, "open"},
		{gobreaker.State(99), -1, "unknown"},
	}
	for _, tt := range tests {
		if got := stateToFloat(tt.state); got != tt.f {
			t.Errorf("stateToFloat(%v) = %v, want %v", tt.state, got, tt.f)
		}
		if got := stateToString(tt.state); got != tt.s {
			t.Errorf("stateToString(%v) = %q, want %q", tt.state, got, tt.s)
		}
	}
}
