// Package model provides the value types shared by the schedule extraction
// pipeline.
//
// # Geometry
//
// All coordinates use a top-down page system: the origin is the top-left
// corner of the page and Y grows downward. [BBox] carries the four edges
// directly (X0, Top, X1, Bottom) because every step of the pipeline compares
// edges rather than sizes.
//
//   - [BBox] - bounding box with expansion and containment helpers
//   - [Token] - a positioned word on a page
//   - [Rect] - a vector rectangle drawn on a page
//   - [PageContent] - everything the pipeline needs from one page
//
// # Schedule records
//
//   - [Column] - the six physical columns of an exam schedule
//   - [Line] - one visual row split into those six columns
//   - [Row] - a finished schedule record
//   - [Table] - a growable list of rows with in-place course append
package model
