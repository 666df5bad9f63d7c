// Package main provides the Strata CLI.
package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/strata-ml/strata/arch"
	"github.com/strata-ml/strata/backend/ref"
	"github.com/strata-ml/strata/layers"
	"github.com/strata-ml/strata/shape"
)

const version = "v0.1.0-dev"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Strata %s\n", version)
			return
		case "demo":
			if err := runDemo(); err != nil {
				log.Fatal().Err(err).Msg("demo failed")
			}
			return
		}
	}

	fmt.Println("Strata - Layer bindings for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Build, save and reload a small model")
}

// runDemo builds an MLP through the binding layer on the reference
// framework, prints its summary, then round-trips the architecture
// through the persistence format.
func runDemo() error {
	fw := ref.New(ref.WithSeed(7))

	var x any = fw.NewSequential()
	steps := []func(x any) (any, error){
		func(x any) (any, error) {
			return layers.Reshape(fw, x, layers.ReshapeConfig{
				TargetShape: shape.Make(28, 28),
				InputShape:  shape.Make(784),
			})
		},
		func(x any) (any, error) { return layers.Flatten(fw, x, layers.FlattenConfig{}) },
		func(x any) (any, error) {
			return layers.Dense(fw, x, layers.DenseConfig{Units: 64, Activation: "relu"})
		},
		func(x any) (any, error) {
			return layers.Dense(fw, x, layers.DenseConfig{Units: 10, Activation: "softmax"})
		},
	}
	for _, step := range steps {
		var err error
		x, err = step(x)
		if err != nil {
			return err
		}
	}
	model := x.(*ref.Sequential)

	fmt.Println(model.Summary())

	out, err := model.OutputShape()
	if err != nil {
		return err
	}
	log.Info().Int("layers", model.Len()).Stringer("output", out).Msg("model built")

	var buf bytes.Buffer
	if err := arch.Save(&buf, model); err != nil {
		return err
	}
	log.Info().Int("bytes", buf.Len()).Msg("architecture saved")

	loaded, err := arch.Load(&buf, fw)
	if err != nil {
		return err
	}
	reloaded, err := loaded.OutputShape()
	if err != nil {
		return err
	}
	if !reloaded.Equal(out) {
		return fmt.Errorf("reloaded output shape %s does not match %s", reloaded, out)
	}
	log.Info().Stringer("output", reloaded).Msg("architecture reloaded")
	return nil
}
