// Command lexigen generates the statically-checked string accessor file
// from a primary catalog, so every identifier used by the program is
// rejected at build time instead of at lookup time.
//
// Usage:
//
//	lexigen --catalog catalogs/strings.xml --package appstrings --out appstrings/strings_gen.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexicat/internal/codegen"
	"github.com/dmitrymomot/lexicat/pkg/catalog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		catalogPath string
		packageName string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:           "lexigen",
		Short:         "Generate typed string identifier accessors from a catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			if err := run(catalogPath, packageName, outPath); err != nil {
				log.Error("generation failed", "catalog", catalogPath, "error", err)
				return err
			}

			log.Info("accessors generated", "catalog", catalogPath, "out", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the primary catalog (required)")
	cmd.Flags().StringVar(&packageName, "package", "appstrings", "package name for the generated file")
	cmd.Flags().StringVar(&outPath, "out", "strings_gen.go", "output file path")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func run(catalogPath, packageName, outPath string) error {
	dir, file := filepath.Split(filepath.Clean(catalogPath))
	if dir == "" {
		dir = "."
	}

	bundle, err := catalog.Load(os.DirFS(dir), file)
	if err != nil {
		return err
	}

	src, err := codegen.Generate(bundle, packageName)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", outPath, err)
	}
	return nil
}
