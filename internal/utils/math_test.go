package utils

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestHeadingVectorZeroPointsUp(t *testing.T) {
	dx, dy := HeadingVector(0, 10)
	if math.Abs(dx) > eps || math.Abs(dy+10) > eps {
		t.Fatalf("HeadingVector(0, 10) = (%v, %v), want (0, -10)", dx, dy)
	}
}

func TestHeadingVectorPositiveAngleTurnsLeft(t *testing.T) {
	dx, dy := HeadingVector(90, 4)
	if math.Abs(dx+4) > eps || math.Abs(dy) > eps {
		t.Fatalf("HeadingVector(90, 4) = (%v, %v), want (-4, 0)", dx, dy)
	}
	dx, _ = HeadingVector(-45, 4)
	if dx <= 0 {
		t.Fatalf("HeadingVector(-45, 4) dx = %v, want > 0", dx)
	}
}

func TestHeadingVectorMagnitudeEqualsSpeed(t *testing.T) {
	for _, angle := range []float64{-85, -30, 0, 17, 85, 180, 271} {
		dx, dy := HeadingVector(angle, 7.5)
		if got := math.Hypot(dx, dy); math.Abs(got-7.5) > 1e-9 {
			t.Fatalf("angle %v: |v| = %v, want 7.5", angle, got)
		}
	}
}

func TestHeadingAngleInvertsHeadingVector(t *testing.T) {
	for _, angle := range []float64{0, 10, 85, 120, 180, 275, 359} {
		dx, dy := HeadingVector(angle, 3)
		got := HeadingAngle(dx, dy)
		if diff := math.Mod(got-angle+540, 360) - 180; math.Abs(diff) > 1e-6 {
			t.Fatalf("HeadingAngle(HeadingVector(%v)) = %v", angle, got)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		360:  0,
		-90:  270,
		725:  5,
		-720: 0,
	}
	for in, want := range cases {
		if got := NormalizeDegrees(in); math.Abs(got-want) > eps {
			t.Fatalf("NormalizeDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5, 0, 3) = %v, want 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp(-1, 0, 3) = %v, want 0", got)
	}
	if got := Clamp(2, 0, 3); got != 2 {
		t.Fatalf("Clamp(2, 0, 3) = %v, want 2", got)
	}
}
