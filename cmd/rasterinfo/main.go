package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/geowerk/rastercodec"
	"github.com/geowerk/rastercodec/dds"
)

func main() {
	app := &cli.Command{
		Name:      "rasterinfo",
		Usage:     "probe raster files and print their metadata",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit metadata as JSON"},
			&cli.StringFlag{Name: "suffix", Usage: "override the format suffix (defaults to the file extension)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return cli.Exit("rasterinfo: no input files", 2)
	}

	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	reg := rastercodec.NewRegistryWithLogger(log)
	reg.RegisterReader(dds.New())

	for _, path := range cmd.Args().Slice() {
		suffix := cmd.String("suffix")
		if suffix == "" {
			suffix = strings.TrimPrefix(filepath.Ext(path), ".")
		}

		params := rastercodec.NewParams()
		if err := reg.ReadMetadata(rastercodec.FileSource(path), suffix, params); err != nil {
			return err
		}

		if cmd.Bool("json") {
			out, err := json.Marshal(params)
			if err != nil {
				return fmt.Errorf("marshal metadata for %q: %w", path, err)
			}
			fmt.Printf("%s\t%s\n", path, out)
			continue
		}

		fmt.Println(path)
		for _, key := range params.Keys() {
			fmt.Printf("  %s = %v\n", key, params.Value(key))
		}
	}

	return nil
}
