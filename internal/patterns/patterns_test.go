package patterns

import (
	"errors"
	"slices"
	"testing"

	"life-rle/pkg/rle"
	"life-rle/pkg/sims/life"
)

func TestBuiltinsDecode(t *testing.T) {
	for _, name := range Names() {
		b, err := Lookup(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if b.Population() == 0 {
			t.Fatalf("%s decoded to an empty board", name)
		}
		again, err := rle.Decode(rle.Encode(b))
		if err != nil || !b.Equal(again) {
			t.Fatalf("%s does not survive an encode/decode round trip (err=%v)", name, err)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "glider") || !slices.Contains(names, "gosper-gun") {
		t.Fatalf("missing built-ins: %v", names)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("no-such-thing"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("err = %v, want ErrUnknown", err)
	}
}

func TestRegisterInvalidSurfacesFormatError(t *testing.T) {
	Register("broken", "x = 2\n2o!")
	defer delete(registry, "broken")
	if _, err := Lookup("broken"); !errors.Is(err, rle.ErrInvalidFormat) {
		t.Fatalf("err = %v, want ErrInvalidFormat", err)
	}
}

func TestBlinkerOscillatesInKernel(t *testing.T) {
	b, err := Lookup("blinker")
	if err != nil {
		t.Fatal(err)
	}
	l, _ := life.New(5, 5)
	l.Load(b)
	start := l.Snapshot()
	l.Step()
	if l.Snapshot().Equal(start) {
		t.Fatal("blinker should change phase after one step")
	}
	l.Step()
	if !l.Snapshot().Equal(start) {
		t.Fatalf("blinker did not return after two steps:\n%s", l.Snapshot())
	}
}

func TestGosperGunEmitsGlider(t *testing.T) {
	gun, err := Lookup("gosper-gun")
	if err != nil {
		t.Fatal(err)
	}
	if gun.Rows() != 9 || gun.Cols() != 36 || gun.Population() != 36 {
		t.Fatalf("gun is %dx%d with %d cells", gun.Rows(), gun.Cols(), gun.Population())
	}
	l, _ := life.New(60, 80)
	l.Load(gun)
	for i := 0; i < 90; i++ {
		l.Step()
	}
	before := l.Population()
	for i := 0; i < 30; i++ {
		l.Step()
	}
	// The gun has period 30 and adds one five-cell glider per period.
	if got := l.Population(); got != before+5 {
		t.Fatalf("population grew from %d to %d over one period, want +5", before, got)
	}
}
