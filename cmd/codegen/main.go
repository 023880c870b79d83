package main

import (
	"context"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outKey        = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate fixed arity wrappers for signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest argument count to generate",
				Value: 3,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "arity/signals.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for arity started")
	defer func() {
		log.Printf("Codegen for arity finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	if count < 1 {
		return fmt.Errorf("--%s must be at least 1", arityCountKey)
	}
	out, err := filepath.Abs(cmd.String(outKey))
	if err != nil {
		return err
	}

	src := templates.ArityGen(filepath.Base(filepath.Dir(out)), count)
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}

	written, err := writeIfChanged(out, formatted)
	if err != nil {
		return err
	}
	if !written {
		log.Printf("%s unchanged (xxhash %016x)", out, xxhash.Sum64(formatted))
		return nil
	}
	log.Printf("Wrote %s with %d arities (xxhash %016x)", out, count, xxhash.Sum64(formatted))
	return nil
}

// writeIfChanged skips the write when the file already holds contents, so
// repeated runs leave modification times alone.
func writeIfChanged(path string, contents []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return false, err
	case xxhash.Sum64(existing) == xxhash.Sum64(contents):
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	return true, os.WriteFile(path, contents, 0o644)
}
