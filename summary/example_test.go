package summary_test

import (
	"fmt"

	"github.com/katalvlaran/confint/summary"
)

// ExampleSummarize reduces a small sample to its descriptive statistics
// in one pass over the data.
func ExampleSummarize() {
	s, err := summary.Summarize([]float64{1, 2, 3, 4, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("n=%d mean=%.4f sd=%.4f se=%.4f\n", s.N, s.Mean, s.StdDev, s.StdErr)
	// Output:
	// n=5 mean=3.0000 sd=1.5811 se=0.7071
}

// ExampleMean averages the cartwheel-distance sample.
func ExampleMean() {
	distances := []float64{
		79, 70, 85, 87, 72, 81, 107, 98, 106, 65,
		96, 79, 92, 66, 72, 115, 90, 74, 64, 85,
		66, 101, 82, 63, 67,
	}
	m, err := summary.Mean(distances)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("mean distance: %.2f cm\n", m)
	// Output:
	// mean distance: 82.48 cm
}

// ExampleVariance computes the unbiased sample variance.
func ExampleVariance() {
	v, err := summary.Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("s² = %.4f\n", v)
	// Output:
	// s² = 4.5714
}
