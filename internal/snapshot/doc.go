// Metagraphus - Photo Metadata Analytics and Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/metagraphus

// Package snapshot persists the cleaned metadata table as a CSV file.
//
// The snapshot is the system's only cache: once written it is read back on
// every process start until someone deletes the file. There is no TTL and
// no partial refresh. Saves are atomic (temp file + rename) so a crashed
// writer cannot leave a torn snapshot behind.
package snapshot
