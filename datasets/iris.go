// Package datasets provides the embedded iris benchmark dataset.
package datasets

import (
	_ "embed"
	"encoding/csv"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/irisml/irispredict/pkg/errors"
)

//go:embed iris.csv
var irisCSV string

// IrisFeatureNames is the canonical feature column order. Training and
// prediction must frame rows in this order; the persisted model records it
// so the serving side cannot drift from the training side.
var IrisFeatureNames = []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}

// IrisTargetNames maps class index to species label.
var IrisTargetNames = []string{"iris-setosa", "iris-versicolor", "iris-virginica"}

// Dataset holds a feature matrix, a class index column vector and the names
// describing both.
type Dataset struct {
	X            *mat.Dense // nSamples x nFeatures
	Y            *mat.Dense // nSamples x 1, class indices
	FeatureNames []string
	TargetNames  []string
}

// NSamples returns the number of rows in the dataset.
func (d *Dataset) NSamples() int {
	r, _ := d.X.Dims()
	return r
}

// NFeatures returns the number of feature columns in the dataset.
func (d *Dataset) NFeatures() int {
	_, c := d.X.Dims()
	return c
}

// LoadIris parses the embedded iris CSV into a Dataset. The file carries a
// header row matching IrisFeatureNames plus a species column.
func LoadIris() (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(irisCSV))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded iris data")
	}
	if len(records) < 2 {
		return nil, errors.NewModelError("datasets.LoadIris", "empty dataset", errors.ErrEmptyData)
	}

	// Skip header.
	rows := records[1:]
	nSamples := len(rows)
	nFeatures := len(IrisFeatureNames)

	classIndex := make(map[string]int, len(IrisTargetNames))
	for i, name := range IrisTargetNames {
		classIndex[name] = i
	}

	X := mat.NewDense(nSamples, nFeatures, nil)
	y := mat.NewDense(nSamples, 1, nil)

	for i, row := range rows {
		if len(row) != nFeatures+1 {
			return nil, errors.NewDimensionError("datasets.LoadIris", nFeatures+1, len(row), 1)
		}
		for j := 0; j < nFeatures; j++ {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid value %q at row %d column %d", row[j], i, j)
			}
			X.Set(i, j, v)
		}
		cls, ok := classIndex[row[nFeatures]]
		if !ok {
			return nil, errors.Newf("unknown species %q at row %d", row[nFeatures], i)
		}
		y.Set(i, 0, float64(cls))
	}

	return &Dataset{
		X:            X,
		Y:            y,
		FeatureNames: IrisFeatureNames,
		TargetNames:  IrisTargetNames,
	}, nil
}
