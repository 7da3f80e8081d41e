// Command quaddemo exercises the quad library from the terminal: the
// collision-candidate quadtree demo plus the procedural generators,
// with ASCII previews standing in for real graphics output.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gospatial/quad"
	"github.com/gospatial/quad/internal/ascii"
	"github.com/gospatial/quad/procgen"
)

func main() {
	app := &cli.App{
		Name:  "quaddemo",
		Usage: "spatial partitioning and procedural generation demos",
	}

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "enable debug logging to stderr",
		},
	}
	app.Before = func(cctx *cli.Context) error {
		if cctx.Bool("verbose") {
			quad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
		return nil
	}

	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "quadtree",
			Usage:  "build the reference collision world and run range queries",
			Action: runQuadtree,
		},
		&cli.Command{
			Name:   "sierpinski",
			Usage:  "print the line segments of a Sierpinski triangle",
			Action: runSierpinski,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "depth",
					Usage: "recursion depth; segment count grows as 3^depth",
					Value: 4,
				},
			},
		},
		&cli.Command{
			Name:   "noise",
			Usage:  "generate a grayscale noise texture",
			Action: runNoise,
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "width", Value: 128, Usage: "texture width in pixels"},
				&cli.IntFlag{Name: "height", Value: 128, Usage: "texture height in pixels"},
				&cli.Float64Flag{
					Name:  "offset",
					Usage: "phase offset; negative picks one at random",
					Value: -1,
				},
				&cli.IntFlag{Name: "cols", Value: 64, Usage: "preview width in characters"},
			},
		},
		&cli.Command{
			Name:   "julia",
			Usage:  "render a Julia set",
			Action: runJulia,
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "width", Value: 800, Usage: "image width in pixels"},
				&cli.IntFlag{Name: "height", Value: 600, Usage: "image height in pixels"},
				&cli.IntFlag{Name: "iters", Value: 100, Usage: "escape-time iteration limit"},
				&cli.Float64Flag{Name: "cre", Value: real(procgen.DefaultJuliaConstant), Usage: "real part of the Julia constant"},
				&cli.Float64Flag{Name: "cim", Value: imag(procgen.DefaultJuliaConstant), Usage: "imaginary part of the Julia constant"},
				&cli.IntFlag{Name: "cols", Value: 80, Usage: "preview width in characters"},
			},
		},
	}
	app.RunAndExitOnError()
}

func runQuadtree(cctx *cli.Context) error {
	world := quad.R(0, 0, 800, 600)
	const capacity = 4
	tree, err := quad.New(world, capacity)
	if err != nil {
		return err
	}
	fmt.Printf("Quadtree initialized for world (%gx%g) with node capacity %d.\n\n", world.W, world.H, capacity)

	objects := []quad.Entry{
		{ID: 1, Bounds: quad.R(10, 10, 20, 20)},
		{ID: 2, Bounds: quad.R(700, 50, 30, 30)},
		{ID: 3, Bounds: quad.R(50, 500, 40, 40)},
		{ID: 4, Bounds: quad.R(300, 250, 50, 50)},
		{ID: 5, Bounds: quad.R(320, 270, 10, 10)},
		{ID: 6, Bounds: quad.R(150, 150, 60, 60)},
		{ID: 7, Bounds: quad.R(380, 290, 20, 20)},
		{ID: 8, Bounds: quad.R(750, 550, 10, 10)},
	}
	fmt.Println("Inserting objects into the quadtree...")
	for _, o := range objects {
		if !tree.Insert(o) {
			fmt.Printf("  object %d at %v is outside the world, skipped\n", o.ID, o.Bounds)
		}
	}
	fmt.Printf("All objects inserted (%d indexed).\n\n", tree.Len())

	queryRange := quad.R(280, 200, 100, 100)
	fmt.Printf("Querying for potential colliders within range %v\n", queryRange)
	printHits(tree.Query(queryRange))

	playerView := quad.R(0, 0, 100, 100)
	fmt.Printf("\nQuerying objects within player's view %v\n", playerView)
	printHits(tree.Query(playerView))

	st := tree.Stats()
	fmt.Printf("\nStats: %d nodes visited, %d entry tests, %d subdivisions.\n",
		st.NodesVisited, st.EntryTests, st.Subdivisions)
	return nil
}

func printHits(hits []quad.Entry) {
	if len(hits) == 0 {
		fmt.Println("  no objects found in the query range")
		return
	}
	fmt.Printf("  found %d potential colliders:\n", len(hits))
	for _, e := range hits {
		fmt.Printf("  - object %d at %v\n", e.ID, e.Bounds)
	}
}

func runSierpinski(cctx *cli.Context) error {
	depth := cctx.Int("depth")
	p1 := quad.Pt(100, 100)
	p2 := quad.Pt(50, 400)
	p3 := quad.Pt(350, 400)

	fmt.Printf("Sierpinski triangle: corners (%g,%g) (%g,%g) (%g,%g), depth %d\n\n",
		p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, depth)

	n := 0
	procgen.SierpinskiFunc(p1, p2, p3, depth, func(a, b quad.Point) {
		fmt.Printf("drawing line from (%g, %g) to (%g, %g)\n", a.X, a.Y, b.X, b.Y)
		n++
	})
	fmt.Printf("\n%d segments drawn.\n", n)
	return nil
}

func runNoise(cctx *cli.Context) error {
	w, h := cctx.Int("width"), cctx.Int("height")
	offset := cctx.Float64("offset")
	if offset < 0 {
		offset = rand.Float64() * 100
	}

	fmt.Printf("Generating a %dx%d texture (offset %.3f)...\n", w, h, offset)
	img := procgen.Noise(w, h, offset)

	fmt.Print("First 10 pixels (intensity):")
	for x := 0; x < 10 && x < w; x++ {
		fmt.Printf(" %d", img.GrayAt(x, 0).Y)
	}
	fmt.Print("\n\n")
	fmt.Print(ascii.Render(img, cctx.Int("cols")))
	return nil
}

func runJulia(cctx *cli.Context) error {
	c := complex(cctx.Float64("cre"), cctx.Float64("cim"))
	w, h := cctx.Int("width"), cctx.Int("height")

	fmt.Printf("Rendering %dx%d Julia set for c = %g...\n\n", w, h, c)
	img := procgen.Julia(w, h, c, procgen.WithMaxIterations(cctx.Int("iters")))
	fmt.Print(ascii.Render(img, cctx.Int("cols")))
	return nil
}
