// Package histogram describes a terrain cross-section as a row of bars
package histogram

import "fmt"

// Histogram is a read-only profile of bar heights.
// HeightAt is only called with 0 <= i < Width() and must return a
// non-negative height.
type Histogram interface {
	Width() int
	HeightAt(i int) int
}

// Terrain is a Histogram backed by a slice
type Terrain struct {
	peaks []int
}

// NewTerrain returns a terrain with a private copy of peaks
func NewTerrain(peaks ...int) *Terrain {
	p := make([]int, len(peaks))
	copy(p, peaks)
	return &Terrain{peaks: p}
}

// Width returns the number of bars
func (t *Terrain) Width() int {
	return len(t.peaks)
}

// HeightAt returns the height of the bar at position i
func (t *Terrain) HeightAt(i int) int {
	return t.peaks[i]
}

// Peaks returns a copy of the bar heights
func (t *Terrain) Peaks() []int {
	p := make([]int, len(t.peaks))
	copy(p, t.peaks)
	return p
}

func (t *Terrain) String() string {
	return fmt.Sprint(t.peaks)
}

type reversed struct {
	h Histogram
}

// Reversed returns a view of h read from right to left
func Reversed(h Histogram) Histogram {
	return reversed{h}
}

func (r reversed) Width() int {
	return r.h.Width()
}

func (r reversed) HeightAt(i int) int {
	return r.h.HeightAt(r.h.Width() - 1 - i)
}

// Highest returns the tallest bar of h, 0 if h is empty
func Highest(h Histogram) int {
	highest := 0
	for i := 0; i < h.Width(); i++ {
		if h.HeightAt(i) > highest {
			highest = h.HeightAt(i)
		}
	}
	return highest
}
