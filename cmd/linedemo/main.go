// Command linedemo renders a scene of stroked lines to PNG or PDF.
//
// Usage:
//
//	linedemo [-scene scene.yaml] [-output lines.png] [-v] [-log-file linedemo.log]
//
// Without -scene a built-in scene is drawn. The output format follows the
// file extension (.png or .pdf).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/line"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "linedemo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("linedemo", flag.ContinueOnError)
	var (
		scenePath = fs.String("scene", "", "YAML scene file (built-in scene if empty)")
		output    = fs.String("output", "lines.png", "output file (.png or .pdf)")
		width     = fs.Int("width", 0, "image width (overrides the scene)")
		height    = fs.Int("height", 0, "image height (overrides the scene)")
		logFile   = fs.String("log-file", "", "also write JSON logs to this file, rotated")
		verbose   = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, *verbose, *logFile)
	line.SetLogger(logger)

	scene, err := loadScene(*scenePath)
	if err != nil {
		return err
	}
	if *width > 0 {
		scene.Width = *width
	}
	if *height > 0 {
		scene.Height = *height
	}
	if scene.Width <= 0 || scene.Height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", scene.Width, scene.Height)
	}

	bg, err := scene.BackgroundColor()
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	lines, err := scene.Build()
	if err != nil {
		return err
	}

	if err := writeOutput(*output, scene.Width, scene.Height, bg, lines); err != nil {
		return err
	}
	logger.Info("scene rendered", "output", *output, "lines", len(lines),
		"width", scene.Width, "height", scene.Height)
	return nil
}

func loadScene(path string) (*Scene, error) {
	if path == "" {
		return ParseScene([]byte(defaultScene))
	}
	return LoadScene(path)
}
