// Package region computes the shaded areas of a band diagram.
//
// All curves are sampled on a common k-axis and are treated as piecewise
// linear between the samples. Package region turns them into closed
// polygons which a plotting layer fills:
//
//   - ClipGap cuts a band gap rectangle at a light line. The part of the
//     gap lying above the light line (inside the light cone) is removed, so
//     the light line may split one gap into several polygons.
//   - ResolveOverlaps stacks projected continuum bands (ribbons) on top of
//     each other. Where the bottom of a ribbon dips below the top of the
//     ribbon beneath it, the bottom is clamped and the exact crossing points
//     are spliced into the ribbon's outline.
//   - IndexAxis and CumulativeDistance produce the k-axis itself, either
//     by sample index or by the Euclidean distance travelled along the path
//     through reciprocal space.
//
// The functions never modify the slices passed in. Malformed input (curves
// whose length does not match the k-axis, continuum tables with an odd
// number of columns) is reported as an error wrapping one of the Err*
// values and produces no polygons.
package region
