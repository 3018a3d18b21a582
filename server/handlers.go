package server

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/irisml/irispredict/irismodel"
	"github.com/irisml/irispredict/pkg/errors"
	"github.com/irisml/irispredict/pkg/log"
)

// HomeMessage is the static body returned by the root endpoint.
const HomeMessage = "Iris Dataset Prediction API. Send your POST request to /predict"

// ErrorMessage is the single opaque error payload of /predict. Any failure
// inside the handler — missing field, unparsable number, model error, panic —
// collapses to this string. The response status stays 200; callers of the
// original API depend on that, so it is kept as-is.
const ErrorMessage = "Something went wrong. Please check your input."

type predictAPI struct {
	model *irismodel.Model
}

// Home godoc — returns the API description string.
func (api *predictAPI) Home(c *gin.Context) {
	c.String(http.StatusOK, HomeMessage)
}

// Predict reads the four feature form fields, frames them into a single row
// in the model's training column order and responds with the predicted
// species label.
func (api *predictAPI) Predict(c *gin.Context) {
	var label string

	err := errors.SafeExecute("server.Predict", func() error {
		features := make([]float64, 0, len(api.model.FeatureNames))
		for _, name := range api.model.FeatureNames {
			raw, ok := c.GetPostForm(name)
			if !ok {
				return errors.Newf("missing form field %q", name)
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid value for form field %q", name)
			}
			features = append(features, v)
		}

		var err error
		label, err = api.model.PredictLabel(features)
		return err
	})
	if err != nil {
		slog.Warn("prediction request failed", log.ErrAttr(err))
		c.JSON(http.StatusOK, ErrorMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{"prediction": []string{label}})
}

// NewRouter builds the gin engine serving the prediction API.
func NewRouter(m *irismodel.Model) *gin.Engine {
	api := &predictAPI{model: m}

	router := gin.New()
	router.Use(gin.Recovery(), AccessLogger())

	router.GET("/", api.Home)
	router.POST("/predict", api.Predict)

	return router
}
