// Command train fits a 1-nearest-neighbor classifier on the embedded iris
// dataset, reports held-out accuracy and writes the fitted model bundle to
// disk for the serving process.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/irisml/irispredict/config"
	"github.com/irisml/irispredict/datasets"
	"github.com/irisml/irispredict/irismodel"
	"github.com/irisml/irispredict/metrics"
	"github.com/irisml/irispredict/model_selection"
	"github.com/irisml/irispredict/neighbors"
	"github.com/irisml/irispredict/pkg/log"
	"github.com/irisml/irispredict/plotting"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	scatterPath := flag.String("scatter", "", "optional path for a PNG scatter plot of the training data")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log.SetupLogger(cfg.Log.Level)

	ds, err := datasets.LoadIris()
	if err != nil {
		fatal("failed to load iris dataset", err)
	}

	knn, accuracy, err := fitModel(ds.X, ds.Y)
	if err != nil {
		fatal("training failed", err)
	}

	fmt.Printf("Successfully trained model with accuracy of %.2f\n", accuracy)
	slog.Info("training complete",
		"accuracy", accuracy,
		"n_samples", ds.NSamples(),
		"n_features", ds.NFeatures(),
	)

	bundle := irismodel.New(knn, ds.FeatureNames, ds.TargetNames)
	if err := bundle.Save(cfg.Model.Path); err != nil {
		fatal("failed to persist model", err)
	}
	slog.Info("model persisted", "path", cfg.Model.Path)

	if *scatterPath != "" {
		if err := plotting.SaveScatter(ds, *scatterPath); err != nil {
			fatal("failed to write scatter plot", err)
		}
		slog.Info("scatter plot written", "path", *scatterPath)
	}
}

// fitModel splits the data 80/20 at random, fits a single-neighbor
// classifier on the training partition and measures accuracy on the held-out
// partition. The model is returned whatever the accuracy; there is no
// acceptance threshold.
func fitModel(X, y mat.Matrix) (*neighbors.KNeighborsClassifier, float64, error) {
	XTrain, XTest, yTrain, yTest, err := model_selection.TrainTestSplit(X, y, 0.2, -1)
	if err != nil {
		return nil, 0, err
	}

	knn := neighbors.NewKNeighborsClassifier(neighbors.WithNeighbors(1))
	if err := knn.Fit(XTrain, yTrain); err != nil {
		return nil, 0, err
	}

	preds, err := knn.Predict(XTest)
	if err != nil {
		return nil, 0, err
	}

	accuracy, err := metrics.AccuracyScore(yTest, preds)
	if err != nil {
		return nil, 0, err
	}

	return knn, accuracy, nil
}

func fatal(msg string, err error) {
	slog.Error(msg, log.ErrAttr(err))
	os.Exit(1)
}
