package arch

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
	"github.com/strata-ml/strata/internal/shape"
)

// codec converts between a layer's config and its serialized record,
// and rebuilds the layer into a model on load.
type codec struct {
	encode func(cfg any) (any, error)
	build  func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error
}

// dimsOf flattens a shape for serialization: nil when absent, with Unknown
// dimensions kept as -1.
func dimsOf(s shape.Shape) []int {
	return s.Dims()
}

// shapeOf is the inverse of dimsOf, validating dimensions read from a file.
func shapeOf(dims []int) (shape.Shape, error) {
	if dims == nil {
		return shape.Absent(), nil
	}
	for i, d := range dims {
		if d <= 0 && d != shape.Unknown {
			return shape.Shape{}, fmt.Errorf("invalid dimension %d at index %d", d, i)
		}
	}
	return shape.Make(dims...), nil
}

type denseRecord struct {
	Units      int    `cbor:"units"`
	Activation string `cbor:"activation,omitempty"`
	NoBias     bool   `cbor:"no_bias,omitempty"`
	InputShape []int  `cbor:"input_shape,omitempty"`
	Name       string `cbor:"name,omitempty"`
}

type reshapeRecord struct {
	TargetShape []int  `cbor:"target_shape"`
	InputShape  []int  `cbor:"input_shape,omitempty"`
	Name        string `cbor:"name,omitempty"`
}

type permuteRecord struct {
	Pattern    []int  `cbor:"pattern"`
	InputShape []int  `cbor:"input_shape,omitempty"`
	Name       string `cbor:"name,omitempty"`
}

type repeatVectorRecord struct {
	N          int    `cbor:"n"`
	InputShape []int  `cbor:"input_shape,omitempty"`
	Name       string `cbor:"name,omitempty"`
}

type activityRegularizationRecord struct {
	L1         float64 `cbor:"l1,omitempty"`
	L2         float64 `cbor:"l2,omitempty"`
	InputShape []int   `cbor:"input_shape,omitempty"`
	Name       string  `cbor:"name,omitempty"`
}

type maskingRecord struct {
	MaskValue  float64 `cbor:"mask_value,omitempty"`
	InputShape []int   `cbor:"input_shape,omitempty"`
	Name       string  `cbor:"name,omitempty"`
}

type flattenRecord struct {
	InputShape []int  `cbor:"input_shape,omitempty"`
	Name       string `cbor:"name,omitempty"`
}

type activationRecord struct {
	Activation string `cbor:"activation"`
	InputShape []int  `cbor:"input_shape,omitempty"`
	Name       string `cbor:"name,omitempty"`
}

type dropoutRecord struct {
	Rate       float64 `cbor:"rate"`
	Seed       int64   `cbor:"seed,omitempty"`
	InputShape []int   `cbor:"input_shape,omitempty"`
	Name       string  `cbor:"name,omitempty"`
}

// codecs maps a layer kind to its codec. Lambda is deliberately absent:
// its wrapped function cannot be represented in a file.
var codecs = map[string]codec{
	"dense": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.DenseConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return denseRecord{
				Units:      c.Units,
				Activation: c.Activation,
				NoBias:     c.NoBias,
				InputShape: dimsOf(c.InputShape),
				Name:       c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r denseRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.Dense(fw, model, layers.DenseConfig{
				Units:      r.Units,
				Activation: r.Activation,
				NoBias:     r.NoBias,
				InputShape: in,
				Name:       r.Name,
			})
			return err
		},
	},
	"reshape": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.ReshapeConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return reshapeRecord{
				TargetShape: dimsOf(c.TargetShape),
				InputShape:  dimsOf(c.InputShape),
				Name:        c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r reshapeRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			target, err := shapeOf(r.TargetShape)
			if err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.Reshape(fw, model, layers.ReshapeConfig{
				TargetShape: target,
				InputShape:  in,
				Name:        r.Name,
			})
			return err
		},
	},
	"permute": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.PermuteConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return permuteRecord{
				Pattern:    c.Pattern,
				InputShape: dimsOf(c.InputShape),
				Name:       c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r permuteRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.Permute(fw, model, layers.PermuteConfig{
				Pattern:    r.Pattern,
				InputShape: in,
				Name:       r.Name,
			})
			return err
		},
	},
	"repeat_vector": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.RepeatVectorConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return repeatVectorRecord{
				N:          c.N,
				InputShape: dimsOf(c.InputShape),
				Name:       c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r repeatVectorRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.RepeatVector(fw, model, layers.RepeatVectorConfig{
				N:          r.N,
				InputShape: in,
				Name:       r.Name,
			})
			return err
		},
	},
	"activity_regularization": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.ActivityRegularizationConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return activityRegularizationRecord{
				L1:         c.L1,
				L2:         c.L2,
				InputShape: dimsOf(c.InputShape),
				Name:       c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r activityRegularizationRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.ActivityRegularization(fw, model, layers.ActivityRegularizationConfig{
				L1:         r.L1,
				L2:         r.L2,
				InputShape: in,
				Name:       r.Name,
			})
			return err
		},
	},
	"masking": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.MaskingConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return maskingRecord{
				MaskValue:  c.MaskValue,
				InputShape: dimsOf(c.InputShape),
				Name:       c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r maskingRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.Masking(fw, model, layers.MaskingConfig{
				MaskValue:  r.MaskValue,
				InputShape: in,
				Name:       r.Name,
			})
			return err
		},
	},
	"flatten": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.FlattenConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return flattenRecord{
				InputShape: dimsOf(c.InputShape),
				Name:       c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r flattenRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.Flatten(fw, model, layers.FlattenConfig{
				InputShape: in,
				Name:       r.Name,
			})
			return err
		},
	},
	"activation": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.ActivationConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return activationRecord{
				Activation: c.Activation,
				InputShape: dimsOf(c.InputShape),
				Name:       c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r activationRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.Activation(fw, model, layers.ActivationConfig{
				Activation: r.Activation,
				InputShape: in,
				Name:       r.Name,
			})
			return err
		},
	},
	"dropout": {
		encode: func(cfg any) (any, error) {
			c, ok := cfg.(layers.DropoutConfig)
			if !ok {
				return nil, fmt.Errorf("unexpected config %T", cfg)
			}
			return dropoutRecord{
				Rate:       c.Rate,
				Seed:       c.Seed,
				InputShape: dimsOf(c.InputShape),
				Name:       c.Name,
			}, nil
		},
		build: func(raw cbor.RawMessage, fw layers.Framework, model framework.Sequential) error {
			var r dropoutRecord
			if err := cbor.Unmarshal(raw, &r); err != nil {
				return err
			}
			in, err := shapeOf(r.InputShape)
			if err != nil {
				return err
			}
			_, err = layers.Dropout(fw, model, layers.DropoutConfig{
				Rate:       r.Rate,
				Seed:       r.Seed,
				InputShape: in,
				Name:       r.Name,
			})
			return err
		},
	},
	"lambda": {
		encode: func(any) (any, error) {
			return nil, fmt.Errorf("%w: lambda wraps an arbitrary function", ErrNotSerializable)
		},
		build: func(cbor.RawMessage, layers.Framework, framework.Sequential) error {
			return fmt.Errorf("%w: lambda wraps an arbitrary function", ErrNotSerializable)
		},
	},
}
