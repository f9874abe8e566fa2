// Command rainwater prints the water trapped above the heights given as
// arguments. Without arguments it checks that an empty terrain holds none.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/BrendanNolan/leetcode-trapping-rainwater/golang/histogram"
	trap "github.com/BrendanNolan/leetcode-trapping-rainwater/golang/trapping_rain_water"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rainwater: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("rainwater", flag.ContinueOnError)
	concurrent := fs.Bool("concurrent", false, "scan both sides in parallel")
	verbose := fs.Bool("v", false, "log the water height at every position")
	if err := fs.Parse(args); err != nil {
		return err
	}

	peaks, err := parseHeights(fs.Args())
	if err != nil {
		return err
	}
	tr := histogram.NewTerrain(peaks...)

	water := trap.WaterHeights
	if *concurrent {
		water = trap.WaterHeightsConcurrent
	}
	heights := water(tr)

	var total int64
	for _, w := range heights {
		total += int64(w)
	}
	if tr.Width() == 0 && total != 0 {
		return fmt.Errorf("empty terrain holds %d units of water", total)
	}

	if *verbose {
		log.Printf("terrain: %v", tr)
		log.Printf("water:   %v", heights)
	}
	_, err = fmt.Fprintln(out, total)
	return err
}

func parseHeights(args []string) ([]int, error) {
	peaks := make([]int, len(args))
	for i, a := range args {
		h, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("height %d: %w", i, err)
		}
		if h < 0 {
			return nil, fmt.Errorf("height %d: %d is negative", i, h)
		}
		peaks[i] = h
	}
	return peaks, nil
}
