// Package neighbors implements nearest-neighbor classification,
// compatible with scikit-learn's KNeighborsClassifier.
package neighbors

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/irisml/irispredict/core/model"
	"github.com/irisml/irispredict/metrics"
	"github.com/irisml/irispredict/pkg/errors"
)

// KNeighborsClassifier classifies a sample by majority vote among the k
// closest training samples under Euclidean distance. Fitting is retention:
// the training rows and labels are stored as-is and scanned at prediction
// time. Learned fields are exported so gob persistence round-trips.
type KNeighborsClassifier struct {
	State *model.StateManager

	// K is the number of neighbors consulted per prediction.
	K int

	// Learned parameters
	XTrain    [][]float64 // training feature rows
	YTrain    []int       // class index per training row
	Classes   []int       // sorted unique class indices seen during fit
	NFeatures int
}

// KNeighborsOption is a functional option for KNeighborsClassifier.
type KNeighborsOption func(*KNeighborsClassifier)

// WithNeighbors sets the number of neighbors.
func WithNeighbors(k int) KNeighborsOption {
	return func(knn *KNeighborsClassifier) {
		knn.K = k
	}
}

// NewKNeighborsClassifier creates a new KNeighborsClassifier.
// The default of 5 neighbors matches scikit-learn.
func NewKNeighborsClassifier(opts ...KNeighborsOption) *KNeighborsClassifier {
	knn := &KNeighborsClassifier{
		State: model.NewStateManager(),
		K:     5,
	}

	for _, opt := range opts {
		opt(knn)
	}

	return knn
}

// Fit stores the training data. X is nSamples x nFeatures, y a column vector
// of class indices.
func (knn *KNeighborsClassifier) Fit(X, y mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()

	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("KNeighborsClassifier.Fit", "empty data", errors.ErrEmptyData)
	}
	if yRows != nSamples {
		return errors.NewDimensionError("KNeighborsClassifier.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("KNeighborsClassifier.Fit", "y must be a column vector")
	}
	if knn.K < 1 {
		return errors.NewValueError("KNeighborsClassifier.Fit", "number of neighbors must be >= 1")
	}
	if knn.K > nSamples {
		return errors.NewValueError("KNeighborsClassifier.Fit", "number of neighbors exceeds sample count")
	}

	knn.XTrain = make([][]float64, nSamples)
	knn.YTrain = make([]int, nSamples)
	seen := make(map[int]bool)

	for i := 0; i < nSamples; i++ {
		row := make([]float64, nFeatures)
		for j := 0; j < nFeatures; j++ {
			row[j] = X.At(i, j)
		}
		knn.XTrain[i] = row

		cls := int(y.At(i, 0))
		knn.YTrain[i] = cls
		seen[cls] = true
	}

	knn.Classes = make([]int, 0, len(seen))
	for cls := range seen {
		knn.Classes = append(knn.Classes, cls)
	}
	sort.Ints(knn.Classes)

	knn.NFeatures = nFeatures
	knn.State.SetDimensions(nFeatures, nSamples)
	knn.State.SetFitted()

	return nil
}

// Predict returns a column vector of predicted class indices for the rows
// of X.
func (knn *KNeighborsClassifier) Predict(X mat.Matrix) (mat.Matrix, error) {
	if knn.State == nil || !knn.State.IsFitted() {
		return nil, errors.NewNotFittedError("KNeighborsClassifier", "Predict")
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != knn.NFeatures {
		return nil, errors.NewDimensionError("KNeighborsClassifier.Predict", knn.NFeatures, nFeatures, 1)
	}

	predictions := mat.NewDense(nSamples, 1, nil)
	row := make([]float64, nFeatures)

	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			row[j] = X.At(i, j)
		}
		predictions.Set(i, 0, float64(knn.predictRow(row)))
	}

	return predictions, nil
}

// predictRow finds the k nearest training rows and returns the majority
// class. Ties are broken toward the smaller class index, matching
// scikit-learn's argmax over vote counts.
func (knn *KNeighborsClassifier) predictRow(row []float64) int {
	type neighbor struct {
		dist float64
		cls  int
	}

	nearest := make([]neighbor, 0, knn.K)
	for i, train := range knn.XTrain {
		d := squaredDistance(row, train)

		if len(nearest) < knn.K {
			nearest = append(nearest, neighbor{dist: d, cls: knn.YTrain[i]})
			sort.Slice(nearest, func(a, b int) bool { return nearest[a].dist < nearest[b].dist })
			continue
		}
		if d < nearest[knn.K-1].dist {
			nearest[knn.K-1] = neighbor{dist: d, cls: knn.YTrain[i]}
			sort.Slice(nearest, func(a, b int) bool { return nearest[a].dist < nearest[b].dist })
		}
	}

	votes := make(map[int]int, len(knn.Classes))
	for _, nb := range nearest {
		votes[nb.cls]++
	}

	best := nearest[0].cls
	bestVotes := 0
	for _, cls := range knn.Classes {
		if votes[cls] > bestVotes {
			best = cls
			bestVotes = votes[cls]
		}
	}

	return best
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

// Distance returns the Euclidean distance between two feature vectors.
// Exposed for diagnostics; Predict compares squared distances internally.
func Distance(a, b []float64) float64 {
	return math.Sqrt(squaredDistance(a, b))
}

// Score computes the mean accuracy of Predict(X) against y.
func (knn *KNeighborsClassifier) Score(X, y mat.Matrix) (float64, error) {
	if knn.State == nil || !knn.State.IsFitted() {
		return 0, errors.NewNotFittedError("KNeighborsClassifier", "Score")
	}

	yPred, err := knn.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.AccuracyScore(y, yPred)
}

// IsFitted reports whether Fit has completed.
func (knn *KNeighborsClassifier) IsFitted() bool {
	return knn.State != nil && knn.State.IsFitted()
}
