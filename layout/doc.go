// Package layout recovers the grid of a borderless schedule table from
// positioned words.
//
// The steps run in this order for every page:
//
//   - [LocateHeaders] finds the header labels and their boxes
//   - [OuterRect] picks the rectangle that outlines the table, if any
//   - [ResolveBoundaries] turns header positions into column cut points,
//     falling back to an equal-width split
//   - [TableTokens] keeps the words below the header row and inside the
//     outline
//   - [ClusterLines] groups words into visual lines by vertical proximity
//   - [AssignColumns] splits each visual line into per-column text
//
// All coordinates are top-down (see the model package).
package layout
