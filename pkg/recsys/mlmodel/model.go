package mlmodel

// Regressor scores batches of combined feature vectors. Implementations
// must be safe for concurrent use after construction.
type Regressor interface {
	// Predict returns one score per input row.
	Predict(features [][]float64) ([]float64, error)
	// NumFeatures is the input width the model was trained on.
	NumFeatures() int
}
