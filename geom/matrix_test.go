package geom

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	assertNear(t, name+".X", got.X, want.X)
	assertNear(t, name+".Y", got.Y, want.Y)
}

// --- constructors ---

func TestTranslation(t *testing.T) {
	got := Translation(10, 20).Apply(Vec2{X: 1, Y: 2})
	assertVec(t, "translated", got, Vec2{X: 11, Y: 22})
}

func TestRotation90(t *testing.T) {
	m := Rotation(math.Pi / 2)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", m, Matrix{0, 1, -1, 0, 0, 0})
	assertVec(t, "rot90(1,0)", m.Apply(Vec2{X: 1}), Vec2{Y: 1})
}

func TestScaling(t *testing.T) {
	got := Scaling(2, 3).Apply(Vec2{X: 5, Y: 5})
	assertVec(t, "scaled", got, Vec2{X: 10, Y: 15})
}

// --- Mul / Then ---

func TestMulIdentity(t *testing.T) {
	m := Matrix{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", Mul(Identity, m), m)
	assertMatrix(t, "m*id", Mul(m, Identity), m)
}

func TestMulTranslations(t *testing.T) {
	a := Matrix{1, 0, 0, 1, 10, 20}
	b := Matrix{1, 0, 0, 1, 5, 3}
	assertMatrix(t, "translations", Mul(a, b), Matrix{1, 0, 0, 1, 15, 23})
}

func TestThenOrder(t *testing.T) {
	// Translate first, then scale: (1,1) → (11,1) → (22,2).
	m := Translation(10, 0).Then(Scaling(2, 2))
	assertVec(t, "translate-then-scale", m.Apply(Vec2{X: 1, Y: 1}), Vec2{X: 22, Y: 2})

	// Scale first, then translate: (1,1) → (2,2) → (12,2).
	m = Scaling(2, 2).Then(Translation(10, 0))
	assertVec(t, "scale-then-translate", m.Apply(Vec2{X: 1, Y: 1}), Vec2{X: 12, Y: 2})
}

// --- Invert ---

func TestInvert(t *testing.T) {
	m := Matrix{2, 0, 0, 3, 10, 20}
	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	assertMatrix(t, "m*inv=id", Mul(m, inv), Identity)
}

func TestInvertComplex(t *testing.T) {
	m := Translation(-42, 17).Then(Rotation(math.Pi / 3)).Then(Scaling(2, 0.5)).Then(Translation(400, 300))
	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	assertMatrix(t, "m*inv=id", Mul(m, inv), Identity)
	assertMatrix(t, "inv*m=id", Mul(inv, m), Identity)
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero x scale", Matrix{0, 0, 0, 1, 10, 20}},
		{"zero y scale", Matrix{1, 0, 0, 0, 10, 20}},
		{"both zero", Matrix{0, 0, 0, 0, 50, 100}},
		{"determinant underflows", Scaling(1e-200, 1e-200)},
		{"reciprocal overflows", Scaling(1e-160, 1e-160)},
	}
	for _, tt := range tests {
		inv, err := tt.m.Invert()
		if !errors.Is(err, ErrSingularMatrix) {
			t.Errorf("%s: err = %v, want ErrSingularMatrix", tt.name, err)
		}
		assertMatrix(t, tt.name, inv, Identity)
	}
}

func TestInvertTinyScale(t *testing.T) {
	for _, m := range []Matrix{
		Scaling(1e-7, 1e-7),
		Scaling(1e-6, 1e-6),
		Rotation(0.3).Then(Scaling(1e-7, 1e-6)),
	} {
		inv, err := m.Invert()
		if err != nil {
			t.Fatalf("Invert(%v): %v", m, err)
		}
		p := Vec2{X: 3, Y: 4}
		assertVec(t, "round trip", inv.Apply(m.Apply(p)), p)
	}
}

// --- Apply ---

func TestApplyVectorIgnoresTranslation(t *testing.T) {
	m := Scaling(2, 2).Then(Translation(100, 100))
	assertVec(t, "vector", m.ApplyVector(Vec2{X: 1, Y: 1}), Vec2{X: 2, Y: 2})
	assertVec(t, "point", m.Apply(Vec2{X: 1, Y: 1}), Vec2{X: 102, Y: 102})
}

func TestTransformRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 20}
	got := Rotation(math.Pi / 2).TransformRect(r)
	// (10,0)→(0,10), (10,20)→(-20,10), (0,20)→(-20,0)
	assertNear(t, "X", got.X, -20)
	assertNear(t, "Y", got.Y, 0)
	assertNear(t, "Width", got.Width, 20)
	assertNear(t, "Height", got.Height, 10)
}

func TestGeoMMatchesApply(t *testing.T) {
	m := Translation(-3, 4).Then(Rotation(0.7)).Then(Scaling(1.5, 2)).Then(Translation(20, 10))
	g := m.GeoM()
	p := Vec2{X: 12.5, Y: -8}
	gx, gy := g.Apply(p.X, p.Y)
	want := m.Apply(p)
	if math.Abs(gx-want.X) > 1e-6 || math.Abs(gy-want.Y) > 1e-6 {
		t.Errorf("GeoM.Apply = (%f,%f), want (%f,%f)", gx, gy, want.X, want.Y)
	}
}

// --- benchmarks ---

func BenchmarkMul(b *testing.B) {
	a := Matrix{1, 0, 0, 1, 10, 20}
	c := Matrix{2, 0, 0, 2, 5, 3}
	for i := 0; i < b.N; i++ {
		_ = Mul(a, c)
	}
}
