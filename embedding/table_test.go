package embedding

import "errors"
import "math/rand"
import "testing"

func TestNewShape(t *testing.T) {
	for _, tt := range []struct {
		name string
		len  int
		dim  int
		ok   bool
	}{
		{"zero dim", 4, 0, false},
		{"negative dim", 4, -1, false},
		{"ragged", 5, 2, false},
		{"empty", 0, 3, true},
		{"square", 6, 3, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(make([]float64, tt.len), tt.dim)
			if tt.ok && err != nil {
				t.Fatalf("New: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrShape) {
				t.Fatalf("New: got %v, want ErrShape", err)
			}
		})
	}
}

func TestRowAliases(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	tab, err := New(data, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tab.Rows() != 3 {
		t.Fatalf("Rows = %d, want 3", tab.Rows())
	}
	r := tab.Row(1)
	if len(r) != 2 || cap(r) != 2 || r[0] != 3 || r[1] != 4 {
		t.Fatalf("Row(1) = %v", r)
	}
	r[0] = 30
	if data[2] != 30 {
		t.Fatalf("row does not alias storage")
	}
}

func TestRandomize(t *testing.T) {
	tab := Alloc(10, 4)
	tab.Randomize(rand.New(rand.NewSource(1)), 1)
	var nonzero int
	for _, v := range tab.Data {
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("value %v outside range", v)
		}
		if v != 0 {
			nonzero++
		}
	}
	if nonzero == 0 {
		t.Fatalf("table left zeroed")
	}
}
