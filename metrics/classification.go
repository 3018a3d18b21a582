// Package metrics provides evaluation metrics for classification.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/irisml/irispredict/pkg/errors"
)

// AccuracyScore computes the fraction of correctly classified samples.
// yTrue and yPred are column vectors of class indices.
func AccuracyScore(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 {
		return 0, errors.NewValueError("AccuracyScore", "empty vector")
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError("AccuracyScore", "must be a column vector (n×1 matrix)")
	}
	if rTrue != rPred {
		return 0, errors.NewDimensionError("AccuracyScore", rTrue, rPred, 0)
	}

	var correct int
	for i := 0; i < rTrue; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}

	return float64(correct) / float64(rTrue), nil
}
