// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

/*
Package models defines data structures for the Metagraphus application.

This package contains all data models shared across the application: the
cleaned photo metadata record, aggregation result rows, and the standard API
request/response envelope. It serves as the single source of truth for data
structure definitions and carries no behavior beyond small accessors.

Key Components:

  - Record: One photo's cleaned metadata (dimensions, make, timestamp, GPS,
    dominant colors, tags) with the optionality conventions the cleaner
    guarantees
  - ColorShare: Dominant color with its share of image area
  - APIResponse / APIError / Metadata: Standardized JSON envelope
  - Distribution rows: SizeBucket, YearCount, BrandCount, CountryCount,
    AltitudeBand, ColorShareTotal, TagCount, TagAssignment, MapMarker

Model Categories:

1. Domain Models:
  - Record: produced by the metadata cleaner, persisted in the CSV snapshot
  - ColorShare: parsed from the store's dominant_color rows

2. API Request/Response Models:
  - APIResponse: Standard response wrapper
  - APIError: Error details with stable machine codes
  - Metadata: Response metadata (timestamp, query time, snapshot hit)

3. Aggregation Models:
  - One row type per fixed aggregation, JSON-tagged for the /metadata and
    error surfaces even though chart endpoints normally render them to PNG

Design Principles:

  - No business logic: models are plain data carriers
  - Pointer fields encode absence (TakenAt, Latitude, Longitude, Altitude)
  - Paired optionality is documented on the type, enforced by the cleaner
*/
package models
