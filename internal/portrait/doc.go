// Package portrait orchestrates phase portraits: it integrates a batch
// of initial conditions through the adaptive solver and renders each
// trajectory with direction arrows onto an owned figure.
//
// The one subtle rule lives in [PlaceArrows]: when a trajectory was
// integrated on a descending time schedule, its samples are stored
// backward in physical time, and arrow endpoints are swapped so the
// drawn head still points the way the state actually moves.
package portrait
