// Package arch persists model architectures: the ordered layer
// configurations of a sequential model, without weights.
//
// The on-disk container is a small fixed header (magic, format version,
// SHA-256 checksum) followed by a CBOR payload. Loading replays the
// recorded configurations through the strata constructors against a caller
// supplied framework, so a loaded model is rebuilt, not deserialized.
package arch

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/strata-ml/strata/internal/framework"
	"github.com/strata-ml/strata/internal/layers"
)

// Format constants.
const (
	// FormatVersion is the current container version.
	FormatVersion = 1

	headerSize     = 4 + 1 + sha256.Size // magic + version + checksum
	checksumOffset = 5
)

var magicBytes = []byte("SARC")

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrTruncated          = errors.New("truncated architecture file")
	ErrUnknownLayerType   = errors.New("unknown layer type")
	ErrNotSerializable    = errors.New("layer cannot be serialized")
)

// Recordable is implemented by framework layers that can describe
// themselves as a (kind, config) pair for persistence.
type Recordable interface {
	Record() (kind string, config any)
}

// document is the CBOR payload.
type document struct {
	Version   int           `cbor:"version"`
	CreatedAt time.Time     `cbor:"created_at"`
	Layers    []layerRecord `cbor:"layers"`
}

type layerRecord struct {
	Kind   string          `cbor:"kind"`
	Config cbor.RawMessage `cbor:"config"`
}

// Save writes the architecture of a sequential model.
//
// Every layer must implement Recordable and be of a serializable kind;
// Lambda layers wrap arbitrary functions and fail with ErrNotSerializable.
func Save(w io.Writer, model framework.Sequential) error {
	doc := document{
		Version:   FormatVersion,
		CreatedAt: time.Now().UTC(),
	}
	for i := 0; i < model.Len(); i++ {
		l := model.Layer(i)
		rec, ok := l.(Recordable)
		if !ok {
			return fmt.Errorf("%w: layer %q (%T)", ErrNotSerializable, l.Name(), l)
		}
		kind, cfg := rec.Record()
		c, ok := codecs[kind]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownLayerType, kind)
		}
		record, err := c.encode(cfg)
		if err != nil {
			return fmt.Errorf("layer %q: %w", l.Name(), err)
		}
		raw, err := cbor.Marshal(record)
		if err != nil {
			return fmt.Errorf("layer %q: %w", l.Name(), err)
		}
		doc.Layers = append(doc.Layers, layerRecord{Kind: kind, Config: raw})
	}

	payload, err := cbor.Marshal(doc)
	if err != nil {
		return err
	}
	sum := sha256.Sum256(payload)

	header := make([]byte, 0, headerSize)
	header = append(header, magicBytes...)
	header = append(header, byte(FormatVersion))
	header = append(header, sum[:]...)
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// Load reads an architecture and rebuilds the model against fw.
func Load(r io.Reader, fw layers.Framework) (framework.Sequential, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	if !bytes.Equal(data[:4], magicBytes) {
		return nil, ErrInvalidMagic
	}
	if data[4] != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}
	payload := data[headerSize:]

	var stored [sha256.Size]byte
	copy(stored[:], data[checksumOffset:headerSize])
	if sha256.Sum256(payload) != stored {
		return nil, ErrChecksumMismatch
	}

	var doc document
	if err := cbor.Unmarshal(payload, &doc); err != nil {
		return nil, err
	}

	model := fw.NewSequential()
	for _, rec := range doc.Layers {
		c, ok := codecs[rec.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLayerType, rec.Kind)
		}
		if err := c.build(rec.Config, fw, model); err != nil {
			return nil, fmt.Errorf("layer kind %q: %w", rec.Kind, err)
		}
	}
	return model, nil
}
