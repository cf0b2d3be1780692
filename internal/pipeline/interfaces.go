package pipeline

import (
	"io"

	"inventory-manager/internal/models"
)

// Encoder writes an inventory in one export format.
type Encoder interface {
	Encode(w io.Writer, items []models.Item) error
}

// Decoder reads an inventory previously written by the matching Encoder.
type Decoder interface {
	Decode(r io.Reader) ([]models.Item, error)
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(w io.Writer, items []models.Item) error

func (f EncoderFunc) Encode(w io.Writer, items []models.Item) error {
	return f(w, items)
}
