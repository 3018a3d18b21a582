package neighbors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/irisml/irispredict/core/model"
	"github.com/irisml/irispredict/pkg/errors"
)

// Two well-separated clusters around (0,0) and (10,10).
func clusterData() (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(8, 2, []float64{
		0.0, 0.1,
		0.2, 0.0,
		0.1, 0.3,
		0.3, 0.2,
		10.0, 10.1,
		10.2, 10.0,
		9.8, 10.2,
		10.1, 9.9,
	})
	y := mat.NewDense(8, 1, []float64{0, 0, 0, 0, 1, 1, 1, 1})
	return X, y
}

func TestKNNFitPredict(t *testing.T) {
	X, y := clusterData()

	knn := NewKNeighborsClassifier(WithNeighbors(1))
	require.NoError(t, knn.Fit(X, y))
	assert.True(t, knn.IsFitted())
	assert.Equal(t, []int{0, 1}, knn.Classes)
	assert.Equal(t, 2, knn.NFeatures)

	queries := mat.NewDense(2, 2, []float64{
		0.5, 0.5,
		9.5, 9.5,
	})
	preds, err := knn.Predict(queries)
	require.NoError(t, err)

	assert.Equal(t, 0.0, preds.At(0, 0))
	assert.Equal(t, 1.0, preds.At(1, 0))
}

func TestKNNMajorityVote(t *testing.T) {
	// Three class-0 points near the query against one closer class-1 point.
	// k=1 picks the closest; k=3 is outvoted.
	X := mat.NewDense(4, 1, []float64{
		1.0,
		2.0,
		2.1,
		2.2,
	})
	y := mat.NewDense(4, 1, []float64{1, 0, 0, 0})
	query := mat.NewDense(1, 1, []float64{1.2})

	knn1 := NewKNeighborsClassifier(WithNeighbors(1))
	require.NoError(t, knn1.Fit(X, y))
	pred, err := knn1.Predict(query)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pred.At(0, 0))

	knn3 := NewKNeighborsClassifier(WithNeighbors(3))
	require.NoError(t, knn3.Fit(X, y))
	pred, err = knn3.Predict(query)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pred.At(0, 0))
}

func TestKNNNotFitted(t *testing.T) {
	knn := NewKNeighborsClassifier()
	_, err := knn.Predict(mat.NewDense(1, 2, []float64{1, 2}))
	require.Error(t, err)

	var notFitted *errors.NotFittedError
	assert.True(t, errors.As(err, &notFitted))
}

func TestKNNDimensionMismatch(t *testing.T) {
	X, y := clusterData()
	knn := NewKNeighborsClassifier(WithNeighbors(1))
	require.NoError(t, knn.Fit(X, y))

	_, err := knn.Predict(mat.NewDense(1, 3, []float64{1, 2, 3}))
	require.Error(t, err)

	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))
}

func TestKNNFitValidation(t *testing.T) {
	X, y := clusterData()

	knn := NewKNeighborsClassifier(WithNeighbors(0))
	assert.Error(t, knn.Fit(X, y))

	knn = NewKNeighborsClassifier(WithNeighbors(100))
	assert.Error(t, knn.Fit(X, y))

	knn = NewKNeighborsClassifier(WithNeighbors(1))
	yBad := mat.NewDense(3, 1, nil)
	assert.Error(t, knn.Fit(X, yBad))
}

func TestKNNScore(t *testing.T) {
	X, y := clusterData()
	knn := NewKNeighborsClassifier(WithNeighbors(1))
	require.NoError(t, knn.Fit(X, y))

	score, err := knn.Score(X, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestKNNGobRoundTrip(t *testing.T) {
	X, y := clusterData()
	knn := NewKNeighborsClassifier(WithNeighbors(1))
	require.NoError(t, knn.Fit(X, y))

	var buf bytes.Buffer
	require.NoError(t, model.SaveModelToWriter(knn, &buf))

	var loaded KNeighborsClassifier
	require.NoError(t, model.LoadModelFromReader(&loaded, &buf))

	assert.True(t, loaded.IsFitted())
	assert.Equal(t, knn.K, loaded.K)
	assert.Equal(t, knn.Classes, loaded.Classes)

	pred, err := loaded.Predict(mat.NewDense(1, 2, []float64{10, 10}))
	require.NoError(t, err)
	assert.Equal(t, 1.0, pred.At(0, 0))
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance([]float64{0, 0}, []float64{3, 4}), 1e-12)
}
