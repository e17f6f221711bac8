// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package trip loads bike-share trip records from CSV and selects subsets of
// them by month and day of week.
//
// # Core Concepts
//
//   - Trip: a single CSV row, parsed into typed fields. The month, weekday and
//     hour of the start time are derived when the row is loaded, so every
//     trip is ready to be filtered or aggregated without further parsing.
//
//   - Table: the ordered trips of one city together with the CSV header. A
//     table knows which optional columns (Gender, Birth Year) the source file
//     carried.
//
//   - Filter: the month / day-of-week selection. Applying a filter never
//     mutates the source table; it returns a new table holding the matching
//     trips in their original relative order.
package trip
