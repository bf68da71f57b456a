// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

/*
Package geo reconciles geometry feature names with canonical province records.

Geometry datasets spell province names inconsistently: with or without Turkish
diacritics, in different cases, with historical names ("Afyon") or with extra
words ("Kahramanmaraş Merkez"). NameResolver registers several variants of each
canonical name and resolves a raw display name in three stages:

 1. exact lookup of the raw name among registered variants
 2. lookup of its lowercase forms (Turkish casing, then language-neutral)
 3. case-insensitive substring scan in either direction

Substring candidates are ordered longest first, then lexically, then by
province ID, so ambiguous names always resolve the same way. A name that does
not resolve is a soft failure: Resolve returns false and the caller ignores the
interaction.

Feature collections are plain GeoJSON loaded once at startup. Reconcile reports
which features bind to which province.
*/
package geo
