package histogram

import (
	"reflect"
	"testing"
)

func TestTerrain(t *testing.T) {
	peaks := []int{4, 2, 0, 3, 2, 5}
	tr := NewTerrain(peaks...)

	// The terrain should not share memory with its input
	peaks[0] = 100
	if tr.HeightAt(0) != 4 {
		t.Fatalf("Terrain changed with its input, got: %d", tr.HeightAt(0))
	}

	if tr.Width() != 6 {
		t.Fatalf("Wrong width, expected: 6, got: %d", tr.Width())
	}

	p := tr.Peaks()
	p[1] = 100
	if tr.HeightAt(1) != 2 {
		t.Fatal("Terrain changed through Peaks")
	}

	if s := tr.String(); s != "[4 2 0 3 2 5]" {
		t.Fatalf("Wrong string: %s", s)
	}
}

func TestEmptyTerrain(t *testing.T) {
	tr := NewTerrain()
	if tr.Width() != 0 {
		t.Fatalf("Expected empty terrain, got width %d", tr.Width())
	}
	if h := Highest(tr); h != 0 {
		t.Fatalf("Expected 0 as highest of empty terrain, got: %d", h)
	}
}

func TestReversed(t *testing.T) {
	r := Reversed(NewTerrain(1, 2, 3, 4))

	got := make([]int, r.Width())
	for i := range got {
		got[i] = r.HeightAt(i)
	}
	if expected := []int{4, 3, 2, 1}; !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected: %v, got: %v", expected, got)
	}
}

func TestHighest(t *testing.T) {
	cases := []struct {
		input    []int
		expected int
	}{
		{[]int{0}, 0},
		{[]int{3, 1, 2}, 3},
		{[]int{5, 5, 1, 7, 1, 1, 5, 2, 7, 6}, 7},
	}

	for i, c := range cases {
		got := Highest(NewTerrain(c.input...))
		if got != c.expected {
			t.Fatalf("Case %d fail, expected: %d, got: %d", i, c.expected, got)
		}
	}
}
