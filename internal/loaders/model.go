package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"loopcall-core/model"
)

// ScoringModel loads a custom-trained model from JSON:
//
//	{"intercept": -3.2, "features": ["cor","dist"], "coefficients": [4.8, -1e-05]}
//
// Validation of feature names happens when the model is resolved.
func ScoringModel(path string) (model.Model, error) {
	var m model.Model
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("%s: %w", path, err)
	}
	if len(m.Features) == 0 {
		return m, fmt.Errorf("%s: model has no features", path)
	}
	return m, nil
}
