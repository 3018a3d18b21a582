// Package irismodel bundles a fitted iris classifier with the feature and
// target name metadata the serving side needs. The bundle is what gets
// written to disk by the training step and read back by the server.
package irismodel

import (
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/irisml/irispredict/core/model"
	"github.com/irisml/irispredict/neighbors"
	"github.com/irisml/irispredict/pkg/errors"
)

// DefaultPath is the model file location shared by the training and serving
// entrypoints.
const DefaultPath = "iris.mdl"

// Model is the persisted bundle. FeatureNames records the column order used
// at training time; prediction rows must be framed in the same order.
type Model struct {
	KNN          *neighbors.KNeighborsClassifier
	FeatureNames []string
	TargetNames  []string
}

// New wraps a fitted classifier with its dataset metadata.
func New(knn *neighbors.KNeighborsClassifier, featureNames, targetNames []string) *Model {
	return &Model{
		KNN:          knn,
		FeatureNames: featureNames,
		TargetNames:  targetNames,
	}
}

// PredictLabel classifies a single sample. features must follow the
// FeatureNames column order.
func (m *Model) PredictLabel(features []float64) (string, error) {
	if m.KNN == nil || !m.KNN.IsFitted() {
		return "", errors.NewNotFittedError("irismodel.Model", "PredictLabel")
	}
	if len(features) != len(m.FeatureNames) {
		return "", errors.NewDimensionError("irismodel.PredictLabel", len(m.FeatureNames), len(features), 1)
	}

	X := mat.NewDense(1, len(features), features)
	pred, err := m.KNN.Predict(X)
	if err != nil {
		return "", err
	}

	cls := int(pred.At(0, 0))
	if cls < 0 || cls >= len(m.TargetNames) {
		return "", errors.Newf("predicted class index %d out of range", cls)
	}

	return m.TargetNames[cls], nil
}

// Save writes the bundle to path with gob encoding.
func (m *Model) Save(path string) error {
	return model.SaveModel(m, path)
}

// SaveTo writes the bundle to w with gob encoding.
func (m *Model) SaveTo(w io.Writer) error {
	return model.SaveModelToWriter(m, w)
}

// Load reads a bundle previously written by Save.
func Load(path string) (*Model, error) {
	var m Model
	if err := model.LoadModel(&m, path); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFrom reads a bundle from r.
func LoadFrom(r io.Reader) (*Model, error) {
	var m Model
	if err := model.LoadModelFromReader(&m, r); err != nil {
		return nil, err
	}
	return &m, nil
}
