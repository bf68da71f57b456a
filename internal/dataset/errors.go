// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package dataset

import "errors"

var (
	// ErrNoDataset is returned before the first successful load.
	ErrNoDataset = errors.New("no dataset loaded")

	// ErrProvinceNotFound is returned for an unknown province ID.
	ErrProvinceNotFound = errors.New("province not found")

	// ErrEmptyDataset is returned when a load produced no provinces.
	ErrEmptyDataset = errors.New("dataset contains no provinces")
)
