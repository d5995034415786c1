package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solidkit/brep/internal/brep/geomath"
	"github.com/solidkit/brep/internal/brep/tessellate"
	"github.com/solidkit/brep/internal/config"
	"github.com/solidkit/brep/internal/export/stl"
	"github.com/solidkit/brep/internal/export/threemf"
	"github.com/solidkit/brep/internal/profiling"
	"github.com/solidkit/brep/pkg/scenefile"
)

func newBuildCmd() *cobra.Command {
	var (
		format   string
		segments int
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "build <scene.json>",
		Short: "Build a scene's result shape and export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer profiling.Track("brepcli.build")()

			scenePath := args[0]
			dir := filepath.Dir(scenePath)
			name := strings.TrimSuffix(filepath.Base(scenePath), ".json")

			loader := scenefile.NewLoader(dir)
			scene, err := loader.LoadScene(name)
			if err != nil {
				return err
			}

			if segments > 0 {
				config.SetSegments(segments)
			}

			tol := geomath.Tolerance{
				Linear:  config.GetLinearTolerance(),
				Angular: config.GetAngularTolerance(),
			}
			solid, err := scenefile.Build(scene, tol)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}

			mesh := tessellate.Brep(solid, config.GetSegments())

			out := outPath
			if out == "" {
				out = name + "." + format
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			switch format {
			case "stl":
				err = stl.Write(f, mesh, name)
			case "3mf":
				err = threemf.Write(f, mesh, solid.ID, name)
			default:
				err = fmt.Errorf("unknown format %q (want stl or 3mf)", format)
			}
			if err != nil {
				return err
			}

			fmt.Printf("wrote %s (%d triangles)\n", out, mesh.NumTriangles())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "stl", "export format: stl or 3mf")
	cmd.Flags().IntVar(&segments, "segments", 0, "tessellation segment count override (0 keeps the configured default)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file path (defaults to <scene>.<format>)")

	return cmd
}
