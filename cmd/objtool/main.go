// objtool is a CLI utility for inspecting Wavefront OBJ files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/meshkit/waveobj/internal/config"
	"github.com/meshkit/waveobj/internal/logger"
	"github.com/meshkit/waveobj/pkg/obj"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "groups":
		cmdGroups(args)
	case "header":
		cmdHeader(args)
	case "validate", "check":
		cmdValidate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - Wavefront OBJ inspection utility

Usage:
  objtool <command> [options] <file.obj>

Commands:
  info <file.obj>              Show model statistics
  groups <file.obj>            List groups and their element counts
  header <file.obj>            Print the leading comment block
  validate <file.obj> [...]    Parse files and report the first error

Options:
  -locale <tag>     BCP-47 locale for numeral parsing (default from config)
  -config <path>    Configuration file (default ./objtool.yaml)

Examples:
  objtool info teapot.obj
  objtool groups -locale de fahrzeug.obj
  objtool validate exports/*.obj`)
}

// setup parses command flags, loads the configuration and initializes
// logging. It returns the effective config and the positional args.
func setup(name string, args []string) (*config.Config, []string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	locale := fs.String("locale", "", "BCP-47 locale for numeral parsing")
	configPath := fs.String("config", "", "configuration file path")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *locale != "" {
		cfg.Parser.Locale = *locale
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return cfg, fs.Args()
}

func parseFile(cfg *config.Config, path string) *obj.Model {
	model, err := obj.ParseFileWithOptions(path, obj.Options{Locale: cfg.Parser.Locale})
	if err != nil {
		logger.Error("parse failed", zap.String("file", path), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("parsed model",
		zap.String("file", path),
		zap.Int("vertices", len(model.Vertices)),
		zap.Int("elements", model.ElementCount()))
	return model
}

func cmdInfo(args []string) {
	cfg, files := setup("info", args)
	defer logger.Sync()

	if len(files) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>")
		os.Exit(1)
	}

	model := parseFile(cfg, files[0])

	fmt.Printf("File:              %s\n", files[0])
	fmt.Printf("Vertices:          %d\n", len(model.Vertices))
	fmt.Printf("Texture vertices:  %d\n", len(model.TextureVertices))
	fmt.Printf("Normals:           %d\n", len(model.Normals))
	fmt.Printf("Parameter points:  %d\n", len(model.ParameterVertices))
	fmt.Printf("Points:            %d\n", len(model.Points))
	fmt.Printf("Lines:             %d\n", len(model.Lines))
	fmt.Printf("Faces:             %d\n", len(model.Faces))

	if model.HasFreeFormGeometry() {
		fmt.Printf("Curves:            %d\n", len(model.Curves))
		fmt.Printf("2D curves:         %d\n", len(model.Curves2D))
		fmt.Printf("Surfaces:          %d\n", len(model.Surfaces))
		fmt.Printf("Connections:       %d\n", len(model.Connections))
	}

	if len(model.MaterialLibraries) > 0 {
		fmt.Printf("Material libs:     %v\n", model.MaterialLibraries)
	}
	if len(model.MapLibraries) > 0 {
		fmt.Printf("Map libs:          %v\n", model.MapLibraries)
	}
	if model.ShadowObject != "" {
		fmt.Printf("Shadow object:     %s\n", model.ShadowObject)
	}
	if model.TraceObject != "" {
		fmt.Printf("Trace object:      %s\n", model.TraceObject)
	}
}

func cmdGroups(args []string) {
	cfg, files := setup("groups", args)
	defer logger.Sync()

	if len(files) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool groups <file.obj>")
		os.Exit(1)
	}

	model := parseFile(cfg, files[0])

	if len(model.Groups) == 0 {
		fmt.Fprintln(os.Stderr, "No groups defined")
		return
	}

	for _, g := range model.Groups {
		if g.Empty() && !cfg.Output.ShowEmptyGroups {
			continue
		}
		fmt.Printf("%-24s points=%d lines=%d faces=%d curves=%d curves2d=%d surfaces=%d\n",
			g.Name, len(g.Points), len(g.Lines), len(g.Faces),
			len(g.Curves), len(g.Curves2D), len(g.Surfaces))
	}
}

func cmdHeader(args []string) {
	cfg, files := setup("header", args)
	defer logger.Sync()

	if len(files) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool header <file.obj>")
		os.Exit(1)
	}

	model := parseFile(cfg, files[0])
	if model.Comments == "" {
		fmt.Fprintln(os.Stderr, "No header comments")
		return
	}
	fmt.Println(model.Comments)
}

func cmdValidate(args []string) {
	cfg, files := setup("validate", args)
	defer logger.Sync()

	if len(files) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool validate <file.obj> [more...]")
		os.Exit(1)
	}

	failed := 0
	for _, path := range files {
		_, err := obj.ParseFileWithOptions(path, obj.Options{Locale: cfg.Parser.Locale})
		if err != nil {
			failed++
			fmt.Printf("%s: %v\n", path, err)
			logger.Warn("validation failed",
				zap.String("file", path),
				zap.String("class", errorClass(err)),
				zap.Error(err))
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d files failed\n", failed, len(files))
		os.Exit(1)
	}
}

// errorClass names the parse error taxonomy class for logging.
func errorClass(err error) string {
	switch {
	case errors.Is(err, obj.ErrArity):
		return "arity"
	case errors.Is(err, obj.ErrFormat):
		return "format"
	case errors.Is(err, obj.ErrNumericFormat):
		return "numeric"
	case errors.Is(err, obj.ErrReference):
		return "reference"
	case errors.Is(err, obj.ErrUnsupported):
		return "unsupported"
	case errors.Is(err, obj.ErrLocale):
		return "locale"
	default:
		return "io"
	}
}
