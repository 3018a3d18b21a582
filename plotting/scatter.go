// Package plotting renders training-data visualizations.
package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/irisml/irispredict/datasets"
	"github.com/irisml/irispredict/pkg/errors"
)

// SaveScatter writes a petal-length / petal-width scatter plot of the
// dataset to path, one series per species. The two petal measurements
// separate the three species almost linearly, which makes the plot a quick
// sanity check on a training run.
func SaveScatter(ds *datasets.Dataset, path string) error {
	const (
		xCol = 2 // petal_length
		yCol = 3 // petal_width
	)

	p := plot.New()
	p.Title.Text = "Iris training data"
	p.X.Label.Text = ds.FeatureNames[xCol]
	p.Y.Label.Text = ds.FeatureNames[yCol]

	series := make([]plotter.XYs, len(ds.TargetNames))
	for i := 0; i < ds.NSamples(); i++ {
		cls := int(ds.Y.At(i, 0))
		series[cls] = append(series[cls], plotter.XY{
			X: ds.X.At(i, xCol),
			Y: ds.X.At(i, yCol),
		})
	}

	args := make([]interface{}, 0, 2*len(series))
	for cls, xys := range series {
		args = append(args, ds.TargetNames[cls], xys)
	}
	if err := plotutil.AddScatters(p, args...); err != nil {
		return errors.Wrap(err, "failed to add scatter series")
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save scatter plot")
	}

	return nil
}
