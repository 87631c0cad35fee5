package vg

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

// tupleCounts returns the tuple counts the round trip laws are checked
// with: the edge cases plus a few seeded random counts.
func tupleCounts() []int {
	r := rand.New(rand.NewPCG(1, 2))
	counts := []int{0, 1}
	for range 4 {
		counts = append(counts, 2+r.IntN(40))
	}
	return counts
}

func TestFlattenRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for n := 1; n <= 8; n++ {
		for _, count := range tupleCounts() {
			t.Run(fmt.Sprintf("n=%d/count=%d", n, count), func(t *testing.T) {
				tuples := make([][]float32, count)
				for i := range tuples {
					tuples[i] = make([]float32, n)
					for j := range tuples[i] {
						tuples[i][j] = r.Float32()
					}
				}

				flat, err := Flatten(tuples, n)
				if err != nil {
					t.Fatalf("Flatten() = %v", err)
				}
				if len(flat) != count*n {
					t.Fatalf("len = %d, want %d", len(flat), count*n)
				}
				back, err := Unflatten(flat, n, true)
				if err != nil {
					t.Fatalf("Unflatten() = %v", err)
				}
				if !slices.EqualFunc(back, tuples, slices.Equal[[]float32]) {
					t.Errorf("tuples round trip = %v, want %v", back, tuples)
				}
			})
		}
	}
}

func TestUnflattenRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for n := 1; n <= 8; n++ {
		for _, count := range tupleCounts() {
			t.Run(fmt.Sprintf("n=%d/count=%d", n, count), func(t *testing.T) {
				flat := make([]int32, count*n)
				for i := range flat {
					flat[i] = r.Int32()
				}

				tuples, err := Unflatten(flat, n, true)
				if err != nil {
					t.Fatalf("Unflatten() = %v", err)
				}
				if len(tuples) != count {
					t.Fatalf("got %d tuples, want %d", len(tuples), count)
				}
				back, err := Flatten(tuples, n)
				if err != nil {
					t.Fatalf("Flatten() = %v", err)
				}
				if !slices.Equal(back, flat) {
					t.Errorf("flat round trip = %v, want %v", back, flat)
				}
			})
		}
	}
}

func TestFlattenShapeMismatch(t *testing.T) {
	_, err := Flatten([][]int32{{1, 2}, {3}}, 2)
	if !errors.Is(err, ErrShape) {
		t.Errorf("Flatten() = %v, want ErrShape", err)
	}
}

func TestFlattenAnyWidth(t *testing.T) {
	flat, err := Flatten([][]int32{{1, 2}, {3}, {}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(flat, []int32{1, 2, 3}) {
		t.Errorf("Flatten() = %v, want [1 2 3]", flat)
	}
}

func TestUnflatten(t *testing.T) {
	flat := []int32{1, 4, 7, 2, 5, 8, 3, 6}

	tests := []struct {
		name    string
		n       int
		strict  bool
		want    [][]int32
		wantErr error
	}{
		{"lenient tail", 3, false, [][]int32{{1, 4, 7}, {2, 5, 8}, {3, 6}}, nil},
		{"strict tail", 3, true, nil, ErrShape},
		{"pairs", 2, true, [][]int32{{1, 4}, {7, 2}, {5, 8}, {3, 6}}, nil},
		{"zero width", 0, false, nil, ErrShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unflatten(flat, tt.n, tt.strict)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Unflatten() error = %v, want %v", err, tt.wantErr)
			}
			if !slices.EqualFunc(got, tt.want, slices.Equal[[]int32]) {
				t.Errorf("Unflatten() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnflattenCopies(t *testing.T) {
	flat := []float32{1, 2, 3, 4}
	tuples, err := Unflatten(flat, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	flat[0] = 99
	if tuples[0][0] != 1 {
		t.Error("tuples alias the input slice")
	}
}

func TestUnflattenEmpty(t *testing.T) {
	got, err := Unflatten([]float32{}, 4, true)
	if err != nil || len(got) != 0 {
		t.Errorf("Unflatten(empty) = %v, %v; want no tuples", got, err)
	}
}
