// File: utils/utils_test.go
package utils

import "testing"

func TestAbs(t *testing.T) {
	testCases := []struct {
		in, want int
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
	}
	for _, tc := range testCases {
		if got := Abs(tc.in); got != tc.want {
			t.Errorf("Abs(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMinMaxInt(t *testing.T) {
	if got := MinInt(3, 7); got != 3 {
		t.Errorf("MinInt(3, 7) = %d, want 3", got)
	}
	if got := MinInt(7, 3); got != 3 {
		t.Errorf("MinInt(7, 3) = %d, want 3", got)
	}
	if got := MaxInt(3, 7); got != 7 {
		t.Errorf("MaxInt(3, 7) = %d, want 7", got)
	}
	if got := MaxInt(-3, -7); got != -3 {
		t.Errorf("MaxInt(-3, -7) = %d, want -3", got)
	}
}

func TestClamp(t *testing.T) {
	testCases := []struct {
		value, low, high, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tc := range testCases {
		if got := Clamp(tc.value, tc.low, tc.high); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.value, tc.low, tc.high, got, tc.want)
		}
	}
}
