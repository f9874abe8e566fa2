package trap

import (
	"sync"

	"github.com/BrendanNolan/leetcode-trapping-rainwater/golang/histogram"
)

// WaterHeightsConcurrent returns the same water heights as WaterHeights.
// The highest bar to the left and to the right of each index are scanned
// in two goroutines, then merged in one pass.
func WaterHeightsConcurrent(h histogram.Histogram) []int {
	width := h.Width()
	water := make([]int, width)
	if width == 0 {
		return water
	}

	lPeaks := make([]int, width)
	rPeaks := make([]int, width)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		peak := 0
		for i := 0; i < width; i++ {
			peak = max(peak, h.HeightAt(i))
			lPeaks[i] = peak
		}
	}()
	go func() {
		defer wg.Done()
		peak := 0
		for i := width - 1; i >= 0; i-- {
			peak = max(peak, h.HeightAt(i))
			rPeaks[i] = peak
		}
	}()
	wg.Wait()

	// Both peaks include the bar itself, so the difference is never negative
	for i := range water {
		water[i] = min(lPeaks[i], rPeaks[i]) - h.HeightAt(i)
	}
	return water
}

// TotalConcurrent returns the sum of WaterHeightsConcurrent
func TotalConcurrent(h histogram.Histogram) int64 {
	return sum(WaterHeightsConcurrent(h))
}
