package interval_test

// Shared fixtures for the package tests.

// cartwheel is the 25-observation cartwheel-distance sample: mean 82.48,
// unbiased SD ≈ 15.05855, SE ≈ 3.01171. With the printed t*(24) = 2.064 the
// 95% interval is ≈ (76.264, 88.696).
var cartwheel = []float64{
	79, 70, 85, 87, 72, 81, 107, 98, 106, 65,
	96, 79, 92, 66, 72, 115, 90, 74, 64, 85,
	66, 101, 82, 63, 67,
}

// The car-seat survey: 560 of 659 parents report using a car seat.
const (
	surveyYes    = 560
	surveyTrials = 659
)
