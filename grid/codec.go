package grid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is the serialized form of a Grid. Field order is height, width,
// tiles.
type Record[T any] struct {
	Height int `json:"height" yaml:"height"`
	Width  int `json:"width" yaml:"width"`
	Tiles  []T `json:"tiles" yaml:"tiles"`
}

// Record returns a snapshot of g. The tiles are copied.
func (g *Grid[T]) Record() Record[T] {
	tiles := make([]T, len(g.tiles))
	copy(tiles, g.tiles)
	return Record[T]{Height: g.height, Width: g.width, Tiles: tiles}
}

// FromRecord builds a grid from r, rejecting records whose shape is
// inconsistent. The grid takes ownership of r.Tiles.
func FromRecord[T any](r Record[T]) (*Grid[T], error) {
	if r.Height < 0 || r.Width < 0 {
		return nil, fmt.Errorf("height=%d width=%d: %w", r.Height, r.Width, ErrNegativeDimension)
	}
	want, ok := area(r.Height, r.Width)
	if !ok {
		return nil, fmt.Errorf("height=%d width=%d: %w", r.Height, r.Width, ErrTooLarge)
	}
	if len(r.Tiles) != want {
		return nil, fmt.Errorf("height=%d width=%d has %d tiles, want %d: %w",
			r.Height, r.Width, len(r.Tiles), want, ErrShapeMismatch)
	}
	tiles := r.Tiles
	if tiles == nil {
		tiles = []T{}
	}
	return &Grid[T]{height: r.Height, width: r.Width, tiles: tiles}, nil
}

// wire is the decode target; pointers let missing fields be told apart from
// zero values.
type wire[T any] struct {
	Height *int `json:"height" yaml:"height"`
	Width  *int `json:"width" yaml:"width"`
	Tiles  *[]T `json:"tiles" yaml:"tiles"`
}

func (w wire[T]) record() (Record[T], error) {
	switch {
	case w.Height == nil:
		return Record[T]{}, fmt.Errorf("height: %w", ErrMissingField)
	case w.Width == nil:
		return Record[T]{}, fmt.Errorf("width: %w", ErrMissingField)
	case w.Tiles == nil:
		return Record[T]{}, fmt.Errorf("tiles: %w", ErrMissingField)
	}
	return Record[T]{Height: *w.Height, Width: *w.Width, Tiles: *w.Tiles}, nil
}

// replace swaps g's contents for a decoded record. g is untouched on error.
func (g *Grid[T]) replace(w wire[T]) error {
	r, err := w.record()
	if err != nil {
		return err
	}
	decoded, err := FromRecord(r)
	if err != nil {
		return err
	}
	*g = *decoded
	return nil
}

// MarshalJSON encodes g as {"height":..,"width":..,"tiles":[..]}.
func (g *Grid[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Record())
}

// UnmarshalJSON decodes a record and validates its shape. A repeated
// height, width or tiles key is rejected.
func (g *Grid[T]) UnmarshalJSON(data []byte) error {
	var w wire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("failed to decode grid: %w", err)
	}
	if err := checkDuplicateFields(data); err != nil {
		return err
	}
	return g.replace(w)
}

var recordFields = [...]string{"height", "width", "tiles"}

// checkDuplicateFields scans the top-level object keys of data. Keys match
// fields case-insensitively, the same way encoding/json assigns them.
func checkDuplicateFields(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}
	var seen [len(recordFields)]bool
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, _ := tok.(string)
		for i, f := range recordFields {
			if strings.EqualFold(key, f) {
				if seen[i] {
					return fmt.Errorf("%s: %w", f, ErrDuplicateField)
				}
				seen[i] = true
			}
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil
		}
	}
	return nil
}

// MarshalYAML encodes g as a mapping with height, width and tiles keys.
func (g *Grid[T]) MarshalYAML() (interface{}, error) {
	return g.Record(), nil
}

// UnmarshalYAML decodes a record and validates its shape.
func (g *Grid[T]) UnmarshalYAML(value *yaml.Node) error {
	var w wire[T]
	if err := value.Decode(&w); err != nil {
		return fmt.Errorf("failed to decode grid: %w", err)
	}
	return g.replace(w)
}
