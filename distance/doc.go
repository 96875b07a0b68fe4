// Package distance turns a raw pairwise-distance table into the complete
// weighted graph consumed by the tour searches in package tsp.
//
// What
//
//   - Cost: a tagged distance value that is either a finite, non-negative
//     amount of kilometres or Unreachable. Unreachable absorbs every addition
//     and ranks above every finite value, so a tour that needs a missing
//     distance can never win a minimum comparison.
//   - Table: the raw table, rows and columns keyed by location name, absent
//     cells allowed. LoadCSV reads the spreadsheet export used as input
//     (first column holds the row name, the header holds the column names).
//   - Graph: the complete directed graph over a selection of locations,
//     produced by Build. Every ordered pair of distinct selected locations
//     has a weight; pairs without a recorded distance weigh Unreachable.
//
// Determinism
//
//	Graph keeps the selection order as its canonical location order and
//	every iteration (Locations, Neighbors, MissingPairs) follows it, so
//	searches over the same Graph always see neighbours in the same order.
//
// Errors
//
//   - ErrEmptyTable           a table without rows or columns.
//   - ErrEmptyLocation        an empty location name.
//   - ErrDuplicateLocation    a name repeated in a header, row set or selection.
//   - ErrNegativeDistance     a negative distance in a table cell.
//   - ErrMalformedTable       a CSV that cannot be read as a distance table.
//   - ErrUnknownLocation      Set on a row or column the table does not have.
//
// Missing distances are never an error: they degrade to Unreachable.
package distance
