package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/golines/pkg/scene"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen [scene-file]",
	Short: "Write a scene definition file with default parameters",
	Long:  "Create a TOML scene file to start from. Flags set on the root command (--lines, --seed) are carried into the file.",
	Args:  cobra.ExactArgs(1),
	Run:   runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) {
	filename := args[0]

	s := scene.Default()
	if flagLines > 0 {
		s.Lines = flagLines
	}
	if flagSeed != 0 {
		s.Seed = flagSeed
	}

	if err := s.Save(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d lines, seed %d)\n", filename, s.Lines, s.Seed)
}
