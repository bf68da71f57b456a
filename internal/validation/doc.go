// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

// Package validation validates API request bodies with go-playground/validator
// v10. A single validator instance caches struct metadata and carries the
// domain tags "region" and "sentiment_bucket" used by filter criteria.
//
// Example usage:
//
//	var req models.CompareRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
