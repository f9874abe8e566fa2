// Package trap computes the rain water trapped above a terrain profile
package trap

import (
	"github.com/BrendanNolan/leetcode-trapping-rainwater/golang/histogram"
)

// Trap returns the capacity of trapped rain water
func Trap(height []int) int {
	return int(Total(histogram.NewTerrain(height...)))
}

// Total returns the sum of the water heights trapped above h.
// The sum is kept in an int64 so width*maxHeight fits for 32-bit heights.
func Total(h histogram.Histogram) int64 {
	return sum(WaterHeights(h))
}

// WaterHeights returns the depth of water standing above each bar of h
func WaterHeights(h histogram.Histogram) []int {
	water := make([]int, h.Width())
	if len(water) == 0 {
		return water
	}

	lMaxHeight, rMaxHeight := 0, 0
	lIdx, rIdx := 0, h.Width()-1

	// Resolve whichever side carries the lower peak. The other side is
	// known to hold a bar at least that high, so the lower peak bounds the
	// water level at the current index.
	for lIdx <= rIdx {
		if lMaxHeight <= rMaxHeight {
			water[lIdx] = fill(h.HeightAt(lIdx), &lMaxHeight)
			lIdx++
		} else {
			water[rIdx] = fill(h.HeightAt(rIdx), &rMaxHeight)
			rIdx--
		}
	}

	return water
}

// fill returns the water above a bar of the given height standing under
// peak, and raises peak if the bar is higher.
func fill(height int, peak *int) int {
	if height >= *peak {
		*peak = height
		return 0
	}
	return *peak - height
}

func sum(water []int) int64 {
	var total int64
	for _, w := range water {
		total += int64(w)
	}
	return total
}
