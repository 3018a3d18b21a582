package model

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/irisml/irispredict/pkg/errors"
)

// SaveModel serializes a fitted estimator to a file with encoding/gob.
// The file format carries no version or integrity information; the loader
// must know the concrete type it expects.
func SaveModel(model interface{}, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create model file")
	}
	defer file.Close()

	if err := SaveModelToWriter(model, file); err != nil {
		return err
	}

	return nil
}

// LoadModel deserializes an estimator from a file written by SaveModel.
// model must be a pointer to the same concrete type that was saved.
func LoadModel(model interface{}, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "failed to open model file")
	}
	defer file.Close()

	return LoadModelFromReader(model, file)
}

// SaveModelToWriter serializes an estimator to an io.Writer.
func SaveModelToWriter(model interface{}, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(model); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader deserializes an estimator from an io.Reader.
func LoadModelFromReader(model interface{}, r io.Reader) error {
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(model); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}
