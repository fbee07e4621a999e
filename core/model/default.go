package model

// Default returns the packaged scoring model: correlation, distance, minimum
// motif score, and orientation dummies against the convergent baseline.
// Coefficients come from a logistic fit on CTCF candidate pairs labeled with
// published loop calls; they are a convenience default, not a hidden
// dependency — any Model with registered feature names works.
func Default() Model {
	return Model{
		Intercept: -3.2173,
		Features: []string{
			"cor",
			"dist",
			"scoreMin",
			"orientation=same-forward",
			"orientation=same-reverse",
			"orientation=divergent",
		},
		Coefficients: []float64{
			4.8485,
			-1.0664e-05,
			0.0543,
			-1.1313,
			-1.2637,
			-1.8426,
		},
	}
}
