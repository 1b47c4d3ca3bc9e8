package sim

import "testing"

func TestCalculateMean_EmptyInput_ReturnsZero(t *testing.T) {
	if got := CalculateMean([]int{}); got != 0 {
		t.Errorf("CalculateMean(empty) = %v, want 0", got)
	}
}

func TestCalculateMean_Values(t *testing.T) {
	if got := CalculateMean([]int{288, 183, 88}); got != 559.0/3.0 {
		t.Errorf("CalculateMean = %v, want %v", got, 559.0/3.0)
	}
	if got := CalculateMean([]float64{0.5, 1.5}); got != 1.0 {
		t.Errorf("CalculateMean = %v, want 1.0", got)
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]int{100, 500, 200, 300, 600}); got != 1700 {
		t.Errorf("Sum = %d, want 1700", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %d, want 0", got)
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(1, 4); got != 25 {
		t.Errorf("Percent(1, 4) = %v, want 25", got)
	}
	if got := Percent(3, 0); got != 0 {
		t.Errorf("Percent(3, 0) = %v, want 0", got)
	}
}
