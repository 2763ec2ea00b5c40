// Package dataset pulls numeric and categorical columns out of header-row
// CSV files, producing the plain []float64 and (successes, trials) inputs
// the interval and summary packages consume.
//
// It is deliberately a leaf: nothing in the core packages imports it, and
// it knows nothing about statistics. ReadColumn extracts one numeric column
// (missing-value tokens skipped, malformed cells rejected with their row
// number), LoadColumn does the same from a file path, and CountWhere turns
// a categorical column into a (successes, trials) pair for the proportion
// path.
//
//	f := strings.NewReader("name,distance\nanna,79\nbela,70\n")
//	xs, err := dataset.ReadColumn(f, "distance", dataset.DefaultOptions())
//
// Behavior is tuned by Options (delimiter, missing-value tokens); the zero
// value and DefaultOptions() both mean "comma-separated, skip empty/NA/NaN".
package dataset
