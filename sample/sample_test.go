package sample

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/tutils/mtrand/mt"
)

func TestPareto(t *testing.T) {
	g := mt.New(mt.WithSeed(5489))
	ref := g.Clone()

	x, err := Pareto(g, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := 2 * math.Pow(1-ref.Float64(), -0.5); x != want {
		t.Fatalf("Pareto = %v, want %v", x, want)
	}

	for i := 0; i < 10000; i++ {
		x, _ := Pareto(g, 1.5, 2.5)
		if x < 1.5 || math.IsInf(x, 0) || math.IsNaN(x) {
			t.Fatalf("draw %d = %v", i, x)
		}
	}
}

func TestParetoInvalid(t *testing.T) {
	g := mt.New(mt.WithSeed(1))
	tests := []struct {
		xmin, alpha float64
		err         error
	}{
		{0, 2, ErrInvalidXmin},
		{-1, 2, ErrInvalidXmin},
		{math.NaN(), 2, ErrInvalidXmin},
		{1, 1, ErrInvalidAlpha},
		{1, 0.5, ErrInvalidAlpha},
	}
	for _, tt := range tests {
		if _, err := Pareto(g, tt.xmin, tt.alpha); !errors.Is(err, tt.err) {
			t.Errorf("Pareto(%v, %v) error = %v, want %v", tt.xmin, tt.alpha, err, tt.err)
		}
	}
}

func TestResample(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	a := Resample(mt.New(mt.WithSeed(4)), xs)
	b := Resample(mt.New(mt.WithSeed(4)), xs)
	if len(a) != len(xs) {
		t.Fatalf("len = %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("resample not reproducible at %d", i)
		}
		if a[i] < 1 || a[i] > 5 || a[i] != math.Trunc(a[i]) {
			t.Fatalf("value %v not drawn from input", a[i])
		}
	}
	if len(Resample(mt.New(mt.WithSeed(4)), nil)) != 0 {
		t.Fatal("empty input gave values")
	}
}

func TestPerm(t *testing.T) {
	p := Perm(mt.New(mt.WithSeed(10)), 100)
	q := Perm(mt.New(mt.WithSeed(10)), 100)
	for i := range p {
		if p[i] != q[i] {
			t.Fatalf("perm not reproducible at %d", i)
		}
	}
	sorted := append([]int(nil), p...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("not a permutation: %v", p)
		}
	}
	if len(Perm(mt.New(mt.WithSeed(10)), 0)) != 0 {
		t.Fatal("Perm(0) not empty")
	}
}
