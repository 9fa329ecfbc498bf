package stats

import (
	"math"
	"testing"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{4, 1, 3, 2}, 2.5},
	}

	for _, tt := range tests {
		if got := Median(tt.values); got != tt.want {
			t.Errorf("%s: Median = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("Median reordered the caller's slice: %v", values)
	}
}

func TestMeanAndSumEmptyInput(t *testing.T) {
	if Mean(nil) != 0 {
		t.Error("Mean of empty input should be 0")
	}
	if Sum(nil) != 0 {
		t.Error("Sum of empty input should be 0")
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 100}

	q1 := Quantile(values, 0.25)
	if math.Abs(q1-1.75) > 1e-9 {
		t.Errorf("Q1 = %v, want 1.75", q1)
	}
	q3 := Quantile(values, 0.75)
	if math.Abs(q3-27.25) > 1e-9 {
		t.Errorf("Q3 = %v, want 27.25", q3)
	}
	if Quantile(nil, 0.5) != 0 {
		t.Error("Quantile of empty input should be 0")
	}
}

func TestMedianTrimmedRemovesOutlier(t *testing.T) {
	// 100 lies beyond Q3 + 1.5*IQR and must not influence the result
	got := MedianTrimmed([]float64{1, 2, 3, 100})
	if got != 2 {
		t.Errorf("MedianTrimmed([1,2,3,100]) = %v, want 2", got)
	}
}

func TestMedianTrimmedSmallSamples(t *testing.T) {
	if got := MedianTrimmed([]float64{5}); got != 5 {
		t.Errorf("MedianTrimmed([5]) = %v, want 5 (no trimming below 4 samples)", got)
	}
	if got := MedianTrimmed([]float64{1, 1000}); got != 500.5 {
		t.Errorf("MedianTrimmed([1,1000]) = %v, want plain median 500.5", got)
	}
	if got := MedianTrimmed(nil); got != 0 {
		t.Errorf("MedianTrimmed(nil) = %v, want 0", got)
	}
}

func TestMedianTrimmedUniformValues(t *testing.T) {
	// Zero IQR keeps only exact-median values; trimming must not empty
	// the set or change the answer
	got := MedianTrimmed([]float64{7, 7, 7, 7, 7})
	if got != 7 {
		t.Errorf("MedianTrimmed(uniform) = %v, want 7", got)
	}
}

func TestRemoveOutliers(t *testing.T) {
	kept := RemoveOutliers([]float64{1, 2, 3, 100})
	if len(kept) != 3 {
		t.Fatalf("RemoveOutliers kept %d values, want 3: %v", len(kept), kept)
	}
	for _, v := range kept {
		if v == 100 {
			t.Error("outlier 100 survived trimming")
		}
	}
}
