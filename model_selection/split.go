// Package model_selection provides utilities for splitting datasets,
// compatible with scikit-learn's model_selection module.
package model_selection

import (
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/irisml/irispredict/pkg/errors"
)

// TrainTestSplit shuffles the rows of X and y together and splits them into
// train and test partitions. testSize is the fraction of samples assigned to
// the test partition and must be in (0, 1). A negative seed selects a
// time-based seed, so every run produces a different split.
func TrainTestSplit(X, y mat.Matrix, testSize float64, seed int64) (XTrain, XTest, yTrain, yTest *mat.Dense, err error) {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return nil, nil, nil, nil, errors.NewModelError("TrainTestSplit", "empty data", errors.ErrEmptyData)
	}
	if yRows != nSamples {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "y must be a column vector")
	}
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "testSize must be in (0, 1)")
	}

	nTest := int(float64(nSamples) * testSize)
	if nTest == 0 {
		nTest = 1
	}
	nTrain := nSamples - nTest
	if nTrain == 0 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "testSize leaves no training samples")
	}

	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(nSamples)

	XTrain = mat.NewDense(nTrain, nFeatures, nil)
	XTest = mat.NewDense(nTest, nFeatures, nil)
	yTrain = mat.NewDense(nTrain, 1, nil)
	yTest = mat.NewDense(nTest, 1, nil)

	for i, src := range perm {
		if i < nTrain {
			for j := 0; j < nFeatures; j++ {
				XTrain.Set(i, j, X.At(src, j))
			}
			yTrain.Set(i, 0, y.At(src, 0))
		} else {
			row := i - nTrain
			for j := 0; j < nFeatures; j++ {
				XTest.Set(row, j, X.At(src, j))
			}
			yTest.Set(row, 0, y.At(src, 0))
		}
	}

	return XTrain, XTest, yTrain, yTest, nil
}
