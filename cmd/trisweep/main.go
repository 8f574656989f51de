package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/polysweep/trisweep"
	"github.com/polysweep/trisweep/internal/fixtures"
	"github.com/polysweep/trisweep/sweep"
)

// Demo of triangulation. Input is newline-separated "x1 y1 x2 y2 winding"
// segment records on stdin, one per line; blank lines are ignored. Use
// --fixture to triangulate one of the embedded SVG test shapes instead of
// reading stdin.
var (
	evenOdd = kingpin.Flag("even-odd", "use the even-odd fill rule instead of non-zero").Bool()
	fixture = kingpin.Flag("fixture", "triangulate an embedded SVG fixture by name instead of stdin").String()
	dump    = kingpin.Flag("dump", "write /tmp/sweep.png showing segments and the resulting mesh").Bool()
)

func main() {
	kingpin.Parse()

	var points []trisweep.Point
	var windings []int
	if *fixture != "" {
		points, windings = fixtures.Load(*fixture)
	} else {
		points, windings = readSegments(os.Stdin)
	}

	vertices, indices, err := trisweep.Triangulate(points, windings, *evenOdd)
	if err != nil {
		log.Fatalf("triangulate: %v", err)
	}
	fmt.Printf("%d input segments -> %d vertices, %d triangles\n", len(windings), len(vertices), len(indices)/3)

	if *dump {
		segments := make([]sweep.Segment, len(windings))
		for i := range windings {
			segments[i] = sweep.Segment{
				StartX: points[2*i].X, StartY: points[2*i].Y,
				EndX: points[2*i+1].X, EndY: points[2*i+1].Y,
				Winding: windings[i],
			}
		}
		outVerts := make([]sweep.Point2, len(vertices))
		for i, v := range vertices {
			outVerts[i] = sweep.Point2(v)
		}
		sweep.DumpPNG(segments, 4, outVerts, indices)
	}
}

func readSegments(in *os.File) ([]trisweep.Point, []int) {
	var points []trisweep.Point
	var windings []int
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			log.Printf("skipping malformed line %q", line)
			continue
		}
		x1, _ := strconv.ParseFloat(fields[0], 64)
		y1, _ := strconv.ParseFloat(fields[1], 64)
		x2, _ := strconv.ParseFloat(fields[2], 64)
		y2, _ := strconv.ParseFloat(fields[3], 64)
		winding, _ := strconv.Atoi(fields[4])
		points = append(points, trisweep.Point{X: x1, Y: y1}, trisweep.Point{X: x2, Y: y2})
		windings = append(windings, winding)
	}
	return points, windings
}
