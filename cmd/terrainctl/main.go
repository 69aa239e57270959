// Command terrainctl analyses a YAML map description and prints its areas,
// chokepoints and bases. It can also answer one path query and write a
// diagnostic PNG.
//
//	terrainctl -map maps/two_rooms.yaml -from 150,180 -to 600,180 -png out.png
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/terra/choke"
	"github.com/katalvlaran/terra/config"
	"github.com/katalvlaran/terra/render"
	"github.com/katalvlaran/terra/terrain"
	"github.com/katalvlaran/terra/terramap"
)

func main() {
	var (
		mapPath    = flag.String("map", "", "YAML map description (required)")
		configPath = flag.String("config", "", "YAML analysis parameters")
		workers    = flag.Int("workers", 0, "chokepoint graph workers (0 = from config)")
		from       = flag.String("from", "", "path query origin, pixels \"x,y\"")
		to         = flag.String("to", "", "path query target, pixels \"x,y\"")
		pngPath    = flag.String("png", "", "write a diagnostic image to this file")
		pngScale   = flag.Int("scale", 2, "image pixels per walk cell")
		byAltitude = flag.Bool("altitude", false, "shade the image by altitude instead of area")
		verbose    = flag.Bool("v", false, "log stage details")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *mapPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, options{
		mapPath:    *mapPath,
		configPath: *configPath,
		workers:    *workers,
		from:       *from,
		to:         *to,
		pngPath:    *pngPath,
		render:     render.Options{Scale: *pngScale, Altitude: *byAltitude},
	}); err != nil {
		slog.Error("terrainctl failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	mapPath    string
	configPath string
	workers    int
	from, to   string
	pngPath    string
	render     render.Options
}

func run(ctx context.Context, out io.Writer, opts options) error {
	src, err := terrain.LoadFile(opts.mapPath)
	if err != nil {
		return err
	}
	cfg := config.Default()
	if opts.configPath != "" {
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
	}

	m, err := terramap.Build(ctx, src,
		terramap.WithConfig(cfg),
		terramap.WithWorkers(opts.workers),
		terramap.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}
	summarize(out, m)

	if opts.from != "" || opts.to != "" {
		a, err := parsePoint(opts.from)
		if err != nil {
			return fmt.Errorf("-from: %w", err)
		}
		b, err := parsePoint(opts.to)
		if err != nil {
			return fmt.Errorf("-to: %w", err)
		}
		path, dist := m.Path(a, b)
		switch {
		case path == nil:
			fmt.Fprintf(out, "path %v -> %v: none\n", a, b)
		default:
			fmt.Fprintf(out, "path %v -> %v: chokepoints %v, distance %d\n", a, b, path, dist)
		}
	}

	if opts.pngPath != "" {
		f, err := os.Create(opts.pngPath)
		if err != nil {
			return fmt.Errorf("failed to create image file: %w", err)
		}
		defer f.Close()
		if err := render.PNG(f, m, opts.render); err != nil {
			return fmt.Errorf("failed to render image: %w", err)
		}
		slog.Info("image written", "path", opts.pngPath)
	}
	return nil
}

func summarize(out io.Writer, m *terramap.Map) {
	d := m.Dims()
	fmt.Fprintf(out, "map %dx%d tiles, max altitude %d\n", d.Width, d.Height, m.MaxAltitude())
	for _, a := range m.Areas() {
		fmt.Fprintf(out, "area %d: %d cells, top %v, altitude %d\n",
			a.ID, a.Cells, terrain.WalkPosition{X: a.Top % d.WalkWidth(), Y: a.Top / d.WalkWidth()}, a.MaxAltitude)
	}
	for _, cp := range m.Chokepoints() {
		fmt.Fprintf(out, "chokepoint %d: areas %d-%d, %d cells, ends %v %v %v\n",
			cp.Index, cp.Areas[0], cp.Areas[1], len(cp.Frontier),
			cp.Pos(choke.End1), cp.Pos(choke.Middle), cp.Pos(choke.End2))
	}
	for i, b := range m.Bases() {
		fmt.Fprintf(out, "base %d: %v area %d, score %d, resources %v\n", i, b.Location, b.Area, b.Score, b.Resources)
	}
}

// parsePoint reads "x,y" as a pixel position.
func parsePoint(s string) (terrain.Position, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return terrain.Position{}, fmt.Errorf("want \"x,y\", got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return terrain.Position{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return terrain.Position{}, err
	}
	return terrain.Position{X: x, Y: y}, nil
}
