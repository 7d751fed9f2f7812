package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/moehriegitt/hob3l-sub002/fx"
	"github.com/moehriegitt/hob3l-sub002/loc"
	"github.com/moehriegitt/hob3l-sub002/options"
	"github.com/moehriegitt/hob3l-sub002/pool"
	"github.com/moehriegitt/hob3l-sub002/segment"
	"github.com/moehriegitt/hob3l-sub002/sweep"
)

// inputPolygon is one tagged polygon in the input document: a closed
// vertex ring plus which truth-table bit it occupies.
type inputPolygon struct {
	Bit    int        `json:"bit"`
	Points [][2]int32 `json:"points"`
}

// inputDoc is the whole JSON document hob3lsweep reads from stdin or a
// file: a set of tagged polygons to combine.
type inputDoc struct {
	Polygons []inputPolygon `json:"polygons"`
}

func main() {
	cmd := &cli.Command{
		Name:      "hob3lsweep",
		Usage:     "Reads tagged polygons as JSON and prints the reduced polygon (or its triangulation)",
		UsageText: "hob3lsweep --op <union|intersection|xor|difference> [--triangulate] [file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "boolean operation to reduce by",
				Value:    "union",
				OnlyOnce: true,
				Validator: func(s string) error {
					switch s {
					case "union", "intersection", "xor", "difference":
						return nil
					default:
						return fmt.Errorf("unknown op %q", s)
					}
				},
			},
			&cli.BoolFlag{
				Name:  "triangulate",
				Usage: "print a triangulation instead of the reduced polygon",
			},
			&cli.BoolFlag{
				Name:  "drop-collinear",
				Usage: "merge collinear runs of output vertices",
			},
			&cli.BoolFlag{
				Name:  "skip-empty",
				Usage: "drop zero-area output loops",
			},
			&cli.IntFlag{
				Name:     "max-simultaneous",
				Usage:    "reject input polygons whose bit is at or above this value",
				Value:    8,
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:  "strict-empty-input",
				Usage: "fail instead of silently dropping degenerate input or output",
			},
		},
		HideVersion: true,
		Action:      app,
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file"},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	r, err := openInput(cmd.StringArg("file"))
	if err != nil {
		return err
	}
	defer r.Close()

	var doc inputDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}
	if len(doc.Polygons) == 0 {
		return fmt.Errorf("input has no polygons")
	}

	s := sweep.New(pool.New(), loc.None, 0,
		options.WithMaxSimultaneous(int(cmd.Int("max-simultaneous"))),
		options.WithDropCollinear(cmd.Bool("drop-collinear")),
		options.WithSkipEmpty(cmd.Bool("skip-empty")),
		options.WithStrictEmptyInput(cmd.Bool("strict-empty-input")),
	)

	maxBit := 0
	for _, p := range doc.Polygons {
		if len(p.Points) < 3 {
			return fmt.Errorf("polygon with bit %d has fewer than 3 points", p.Bit)
		}
		pts := make([]fx.Vec2, len(p.Points))
		for i, xy := range p.Points {
			pts[i] = fx.Vec2{X: fx.Dim(xy[0]), Y: fx.Dim(xy[1])}
		}
		if err := s.AddPolygon(pts, segment.Bit(p.Bit)); err != nil {
			return fmt.Errorf("adding polygon bit %d: %w", p.Bit, err)
		}
		if p.Bit > maxBit {
			maxBit = p.Bit
		}
	}

	table, err := boolTableFor(cmd.String("op"), maxBit+1)
	if err != nil {
		return err
	}
	if err := s.Reduce(table); err != nil {
		return fmt.Errorf("reducing: %w", err)
	}

	var out any
	if cmd.Bool("triangulate") {
		tris, err := s.IntoTriangles()
		if err != nil {
			return fmt.Errorf("triangulating: %w", err)
		}
		out = tris
	} else {
		poly, err := s.IntoPolygon()
		if err != nil {
			return fmt.Errorf("reconstructing: %w", err)
		}
		out = poly
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func boolTableFor(op string, m int) (sweep.BoolTable, error) {
	switch op {
	case "union":
		return sweep.Union(m), nil
	case "intersection":
		return sweep.Intersection(m), nil
	case "xor":
		return sweep.Xor(m), nil
	case "difference":
		return sweep.Difference(m), nil
	default:
		return nil, fmt.Errorf("unknown op %q", op)
	}
}

func openInput(file string) (io.ReadCloser, error) {
	if file == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(file)
}
