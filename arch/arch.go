// Copyright 2026 Strata ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package arch saves and loads model architectures: the ordered layer
// configurations of a sequential model, without weights.
//
// Example:
//
//	var buf bytes.Buffer
//	if err := arch.Save(&buf, model); err != nil {
//	    return err
//	}
//	loaded, err := arch.Load(&buf, fw)
package arch

import (
	"io"

	"github.com/strata-ml/strata/framework"
	"github.com/strata-ml/strata/internal/arch"
	"github.com/strata-ml/strata/layers"
)

// FormatVersion is the current container version.
const FormatVersion = arch.FormatVersion

// Common errors.
var (
	ErrInvalidMagic       = arch.ErrInvalidMagic
	ErrUnsupportedVersion = arch.ErrUnsupportedVersion
	ErrChecksumMismatch   = arch.ErrChecksumMismatch
	ErrTruncated          = arch.ErrTruncated
	ErrUnknownLayerType   = arch.ErrUnknownLayerType
	ErrNotSerializable    = arch.ErrNotSerializable
)

// Recordable is implemented by framework layers that can describe
// themselves as a (kind, config) pair for persistence.
type Recordable = arch.Recordable

// Save writes the architecture of a sequential model.
func Save(w io.Writer, model framework.Sequential) error {
	return arch.Save(w, model)
}

// Load reads an architecture and rebuilds the model against fw.
func Load(r io.Reader, fw layers.Framework) (framework.Sequential, error) {
	return arch.Load(r, fw)
}
