package stats

// minTrimSamples is the smallest sample size where IQR trimming is
// attempted; below it the quartile estimate is too coarse to be useful
const minTrimSamples = 4

// OutlierBounds calculates the lower and upper bounds for non-outlier
// values using the IQR method: [Q1 - 1.5*IQR, Q3 + 1.5*IQR]
func OutlierBounds(values []float64) (lowerBound, upperBound float64) {
	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	iqr := q3 - q1

	lowerBound = q1 - 1.5*iqr
	upperBound = q3 + 1.5*iqr

	return
}

// RemoveOutliers returns the values inside the IQR bounds
func RemoveOutliers(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	lowerBound, upperBound := OutlierBounds(values)

	filtered := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= lowerBound && v <= upperBound {
			filtered = append(filtered, v)
		}
	}

	return filtered
}

// MedianTrimmed returns the median after IQR outlier removal. Fewer than
// four samples skip trimming and return the plain median; if trimming
// empties the set it falls back to the untrimmed median. Empty input
// yields 0.
func MedianTrimmed(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if len(values) < minTrimSamples {
		return Median(values)
	}

	trimmed := RemoveOutliers(values)
	if len(trimmed) == 0 {
		return Median(values)
	}

	return Median(trimmed)
}
