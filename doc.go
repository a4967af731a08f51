// Package bandplot draws photonic band structure diagrams with gonum/plot.
//
// A Figure is a grid of Subplots. Each Subplot shows band frequencies over
// a path of k-vectors and can be annotated with the light cone, band gaps
// (shaded only below the light line), continuum bands projected from a
// larger structure, and fills between two bands.
//
// The geometry of these regions is computed by package region; package
// geom turns the resulting polygons into plotters.
//
// # State
//
// Everything a subplot remembers between calls lives in its
// SubplotState: the k-axis fixed by the first PlotBands, the last band and
// k-vector data, the active crop and the shown frequency range and the
// position in the color palette. Annotations are placed on the k-axis of
// the state, so bands have to be plotted first.
//
// # Errors
//
// Inconsistent input, e.g. a continuum table with the wrong number of rows,
// is logged as a warning to the Figure's Logger and the operation is
// skipped. Only failures to build or write the image are returned.
package bandplot
