// Package pipeline renames the photo folder from a flat list of names.
//
// A run is discover → plan → execute:
//
//   - Discover lists the photo folder (not recursive), keeps allowed
//     extensions and sorts by natural file-name order.
//   - Plan pairs the i-th photo with the i-th name after checking the counts
//     and every target name, so a bad input aborts before anything moves.
//   - Run creates the output folder and renames each pair in order. There is
//     no rollback: a failure part way leaves earlier renames in place.
package pipeline
