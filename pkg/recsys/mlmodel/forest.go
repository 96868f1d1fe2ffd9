package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// Forest is a random-forest regressor loaded from an exported JSON
// artifact. Each tree is stored in flat node arrays; children index -1
// marks a leaf. Prediction averages the per-tree leaf values.
type Forest struct {
	nFeatures int
	trees     []tree
}

type tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

type forestArtifact struct {
	NFeatures int    `json:"n_features"`
	Trees     []tree `json:"trees"`
}

// LoadForest reads and parses a forest artifact from disk.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return ParseForest(data)
}

// ParseForest decodes a forest artifact and validates tree shapes.
func ParseForest(data []byte) (*Forest, error) {
	var artifact forestArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if len(artifact.Trees) == 0 {
		return nil, fmt.Errorf("model artifact has no trees")
	}
	for i, t := range artifact.Trees {
		n := len(t.ChildrenLeft)
		if len(t.ChildrenRight) != n || len(t.Feature) != n ||
			len(t.Threshold) != n || len(t.Value) != n {
			return nil, fmt.Errorf("tree %d has inconsistent node arrays", i)
		}
		if n == 0 {
			return nil, fmt.Errorf("tree %d is empty", i)
		}
	}
	return &Forest{
		nFeatures: artifact.NFeatures,
		trees:     artifact.Trees,
	}, nil
}

func (f *Forest) NumFeatures() int {
	return f.nFeatures
}

// Predict scores each row with every tree and averages the results.
func (f *Forest) Predict(features [][]float64) ([]float64, error) {
	out := make([]float64, len(features))
	for i, row := range features {
		if f.nFeatures > 0 && len(row) != f.nFeatures {
			return nil, fmt.Errorf("feature row %d has width %d, model expects %d",
				i, len(row), f.nFeatures)
		}
		var sum float64
		for t := range f.trees {
			sum += f.trees[t].predict(row)
		}
		out[i] = sum / float64(len(f.trees))
	}
	return out, nil
}

func (t *tree) predict(row []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		if row[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}
