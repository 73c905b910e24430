package core

import (
	"slices"
	"testing"
)

func TestCoordAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coord
		expected Coord
	}{
		{"zero delta", C(5, 5), C(0, 0), C(5, 5)},
		{"up", C(5, 5), C(0, -1), C(5, 4)},
		{"right", C(5, 5), C(1, 0), C(6, 5)},
		{"negative result", C(0, 0), C(-1, -1), C(-1, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Add(tc.b)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestCoordOrdering(t *testing.T) {
	coords := []Coord{C(3, 2), C(1, 2), C(9, 0), C(0, 1)}
	slices.SortFunc(coords, Coord.Compare)

	expected := []Coord{C(9, 0), C(0, 1), C(1, 2), C(3, 2)}
	if !slices.Equal(coords, expected) {
		t.Errorf("sorted = %v, expected %v", coords, expected)
	}

	if C(1, 1).Compare(C(2, 1)) >= 0 {
		t.Error("(1,1) should sort before (2,1)")
	}
	if C(1, 1).Compare(C(1, 1)) != 0 {
		t.Error("equal coordinates should compare as 0")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		c        Coord
		expected bool
	}{
		{"inside", C(15, 15), true},
		{"top-left corner", C(10, 10), true},
		{"bottom-right edge (exclusive)", C(30, 25), false},
		{"outside left", C(5, 15), false},
		{"outside right", C(35, 15), false},
		{"outside top", C(15, 5), false},
		{"outside bottom", C(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.c)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.c, result, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 24, 24).Inset(1)

	if r != NewRect(1, 1, 22, 22) {
		t.Errorf("Inset(1) = %+v, expected {1 1 22 22}", r)
	}
	if r.Area() != 484 {
		t.Errorf("Area() = %d, expected 484", r.Area())
	}
	if NewRect(0, 0, 2, 2).Inset(1).Area() != 0 {
		t.Error("Inset past the middle should have no area")
	}
}
