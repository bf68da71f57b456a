// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package validation

import (
	"strings"
	"sync"
	"testing"

	"github.com/tomtom215/jeososyal/internal/models"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	results := make([]interface{}, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = GetValidator()
		}(i)
	}
	wg.Wait()
	for i := range results {
		if results[i] != results[0] {
			t.Fatal("GetValidator() returned different instances")
		}
	}
}

func TestValidateStruct_FilterCriteria(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria models.FilterCriteria
		wantTag  string
	}{
		{
			name: "valid criteria",
			criteria: models.FilterCriteria{
				Hashtags:  []string{"#deprem"},
				Regions:   []string{models.RegionMarmara, models.RegionAegean},
				Sentiment: []string{models.SentimentPositive, models.SentimentNegative},
			},
		},
		{name: "empty criteria", criteria: models.FilterCriteria{}},
		{
			name:     "unknown region",
			criteria: models.FilterCriteria{Regions: []string{"Trakya"}},
			wantTag:  "region",
		},
		{
			name:     "unknown sentiment bucket",
			criteria: models.FilterCriteria{Sentiment: []string{"Olumlu"}},
			wantTag:  "sentiment_bucket",
		},
		{
			name:     "empty hashtag",
			criteria: models.FilterCriteria{Hashtags: []string{""}},
			wantTag:  "required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.criteria)
			if tt.wantTag == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("ValidateStruct() = nil, want %s failure", tt.wantTag)
			}
			if got := verr.Errors()[0].Tag(); got != tt.wantTag {
				t.Errorf("tag = %q, want %q", got, tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_CompareRequest(t *testing.T) {
	t.Parallel()

	ids := make([]string, 11)
	for i := range ids {
		ids[i] = "34"
	}

	if verr := ValidateStruct(&models.CompareRequest{ProvinceIDs: []string{"34", "06"}}); verr != nil {
		t.Errorf("valid request rejected: %v", verr)
	}

	verr := ValidateStruct(&models.CompareRequest{ProvinceIDs: ids})
	if verr == nil {
		t.Fatal("11 provinces should be rejected")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Details["field"] != "provinceIds" {
		t.Errorf("field = %v, want JSON name provinceIds", apiErr.Details["field"])
	}
	if !strings.Contains(apiErr.Message, "at most 10 items") {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestValidateStruct_ColorRequestTheme(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&models.ColorRequest{Theme: "sepia"})
	if verr == nil {
		t.Fatal("unknown theme should be rejected")
	}
	if got := verr.Error(); !strings.Contains(got, "theme must be one of: light dark") {
		t.Errorf("Error() = %q", got)
	}
}

func TestToAPIError_MultipleFields(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&models.FilterCriteria{
		Regions:   []string{"Trakya"},
		Sentiment: []string{"mixed"},
	})
	if verr == nil || len(verr.Errors()) != 2 {
		t.Fatalf("want 2 field errors, got %v", verr)
	}
	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details = %v", apiErr.Details)
	}
	if !strings.Contains(apiErr.Message, "; ") {
		t.Errorf("Message = %q, want joined messages", apiErr.Message)
	}
}

func TestRequestValidationError_Empty(t *testing.T) {
	t.Parallel()

	ve := &RequestValidationError{}
	if ve.Error() != "validation failed" {
		t.Errorf("Error() = %q", ve.Error())
	}
	if ve.ToAPIError().Code != ErrorCode {
		t.Error("empty error should still carry the validation code")
	}
}
