package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/golines/internal/app"
	"github.com/philipparndt/golines/pkg/scene"
	"github.com/philipparndt/golines/version"
	"github.com/spf13/cobra"
)

var (
	flagLines int
	flagSeed  int64
	flagScene string
)

var rootCmd = &cobra.Command{
	Use:   "golines",
	Short: "An interactive 3D polyline editor with batched rendering",
	Long: `golines renders thousands of polylines as a single batched line set and
lets you edit them interactively: hover and click to select, drag point
handles to move them, click a selected line to add points, and delete
points or whole lines. Scenes are generated from a TOML definition and
reload live when the file changes.`,
	Version: version.GetFullVersion(),
	RunE:    runEditor,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagLines, "lines", 0, "number of lines to generate (overrides the scene file)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "generation seed (overrides the scene file)")
	rootCmd.Flags().StringVar(&flagScene, "scene", "", "scene definition file (TOML), watched for changes")
}

func runEditor(cmd *cobra.Command, args []string) error {
	s, err := loadScene()
	if err != nil {
		return err
	}

	opts := app.Options{Scene: s}
	if flagScene != "" && !cmd.Flags().Changed("lines") && !cmd.Flags().Changed("seed") {
		// Flag overrides disable the watcher: the file no longer describes
		// what is on screen
		opts.SceneFile = flagScene
	}
	return app.Run(opts)
}

// loadScene resolves the scene from the --scene file and flag overrides
func loadScene() (*scene.Scene, error) {
	s := scene.Default()
	if flagScene != "" {
		loaded, err := scene.Load(flagScene)
		if err != nil {
			return nil, err
		}
		s = loaded
	}
	if flagLines > 0 {
		s.Lines = flagLines
	}
	if flagSeed != 0 {
		s.Seed = flagSeed
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
