package portrait

// Arrow is a short directed segment approximating the local velocity;
// the head is at (X1, Y1).
type Arrow struct {
	X0, Y0 float64
	X1, Y1 float64
}

// PlaceArrows selects arrow segments along a sampled trajectory. The
// first arrow sits at index span, each following one span samples
// later. Each segment runs from the sample two indices back to the
// current one. An index past the end skips that arrow without aborting
// the rest.
//
// When the backing schedule is reversed (samples stored backward in
// physical time), tail and head are swapped so the head always points
// in the direction of physical time flow.
func PlaceArrows(xs, ys []float64, reversed bool, span, count int) []Arrow {
	arrows := make([]Arrow, 0, count)
	idx := span
	for a := 0; a < count; a++ {
		if idx >= len(xs) {
			idx += span
			continue
		}
		j := idx - 2
		if j < 0 {
			j = 0
		}
		tail, head := j, idx
		if reversed {
			tail, head = idx, j
		}
		arrows = append(arrows, Arrow{
			X0: xs[tail], Y0: ys[tail],
			X1: xs[head], Y1: ys[head],
		})
		idx += span
	}
	return arrows
}
