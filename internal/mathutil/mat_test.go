package mathutil

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func TestRotationMatrixForm(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
	}{
		{"zero", 0},
		{"quarter turn", math.Pi / 2},
		{"negative", -0.73},
		{"beyond full turn", 2*math.Pi + 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rotation(tt.theta)
			sin, cos := math.Sincos(tt.theta)
			want := Mat2{{cos, sin}, {-sin, cos}}
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					if !almostEqual(r[i][j], want[i][j]) {
						t.Errorf("Rotation(%v)[%d][%d] = %v, want %v", tt.theta, i, j, r[i][j], want[i][j])
					}
				}
			}
			if !almostEqual(r.Det(), 1) {
				t.Errorf("Rotation(%v) determinant = %v, want 1", tt.theta, r.Det())
			}
		})
	}
}

func TestRotationComposesAndInverts(t *testing.T) {
	// Rotating by theta then -theta must restore the original matrix.
	start := Mat2{{1.2, 0.3}, {-0.4, 0.9}}
	theta := 0.6180339887

	rotated := start.Mul(Rotation(theta)).Mul(Rotation(-theta))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if !almostEqual(rotated[i][j], start[i][j]) {
				t.Errorf("round trip [%d][%d] = %v, want %v", i, j, rotated[i][j], start[i][j])
			}
		}
	}
}

func TestMat2Inverse(t *testing.T) {
	t.Run("reconstructs identity", func(t *testing.T) {
		m := Mat2{{1.001, 0.001}, {0, 0.66}}
		inv, ok := m.Inverse()
		if !ok {
			t.Fatal("Inverse returned ok=false for invertible matrix")
		}
		id := m.Mul(inv)
		want := Mat2{{1, 0}, {0, 1}}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if !almostEqual(id[i][j], want[i][j]) {
					t.Errorf("m*inv(m) [%d][%d] = %v, want %v", i, j, id[i][j], want[i][j])
				}
			}
		}
	})

	t.Run("singular", func(t *testing.T) {
		m := Mat2{{1, 2}, {2, 4}}
		if _, ok := m.Inverse(); ok {
			t.Error("Inverse returned ok=true for singular matrix")
		}
	})
}

func TestVec2RowVectorMul(t *testing.T) {
	// Row-vector convention: result[j] = sum_i v[i]*m[i][j].
	v := Vec2{2, 3}
	m := Mat2{{1, -1}, {4, 5}}
	got := v.MulMat(m)
	want := Vec2{2*1 + 3*4, 2*(-1) + 3*5}
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Errorf("MulMat = %+v, want %+v", got, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -0.5, 0, 1, 0},
		{"inside", 0.25, 0, 1, 0.25},
		{"above", 7, 0, 1, 1},
		{"at bound", 1, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}

	if got := ClampInt(12, 0, 9); got != 9 {
		t.Errorf("ClampInt(12, 0, 9) = %d, want 9", got)
	}
	if got := ClampInt(-3, 0, 9); got != 0 {
		t.Errorf("ClampInt(-3, 0, 9) = %d, want 0", got)
	}
}
