package vg

import "fmt"

// Flatten concatenates tuples in order into one contiguous slice.
// When n > 0 every tuple must hold exactly n elements.
func Flatten[T any](tuples [][]T, n int) ([]T, error) {
	total := 0
	for i, t := range tuples {
		if n > 0 && len(t) != n {
			return nil, fmt.Errorf("%w: tuple %d has %d elements, want %d", ErrShape, i, len(t), n)
		}
		total += len(t)
	}

	flat := make([]T, 0, total)
	for _, t := range tuples {
		flat = append(flat, t...)
	}
	return flat, nil
}

// Unflatten splits flat into tuples of n elements.
//
// In strict mode the length of flat must be a multiple of n. Otherwise the
// final partial chunk is returned as a short trailing tuple.
func Unflatten[T any](flat []T, n int, strict bool) ([][]T, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: tuple width %d", ErrShape, n)
	}
	if strict && len(flat)%n != 0 {
		return nil, fmt.Errorf("%w: %d elements do not split into %d-tuples", ErrShape, len(flat), n)
	}

	tuples := make([][]T, 0, (len(flat)+n-1)/n)
	for start := 0; start < len(flat); start += n {
		end := min(start+n, len(flat))
		t := make([]T, end-start)
		copy(t, flat[start:end])
		tuples = append(tuples, t)
	}
	return tuples, nil
}
