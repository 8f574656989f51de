// Package fixtures loads polygon test cases out of embedded SVG files, the
// same role the teacher's fixture loader plays for its own package, but
// restructured around the sweep's segment+winding input rather than a
// simple polygon point list: each <polygon> in a fixture becomes one closed
// ring of segments, with the winding contribution derived from the ring's
// signed area so that holes (drawn clockwise) automatically subtract from
// their enclosing shape (drawn counterclockwise) under the non-zero rule.
package fixtures

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/polysweep/trisweep"
)

//go:embed svg
var svgFixtures embed.FS

// Load parses the named fixture (without its .svg extension) into a flat
// segment/winding pair ready for trisweep.Triangulate.
func Load(name string) ([]trisweep.Point, []int) {
	fixture, err := svgFixtures.Open("svg/" + name + ".svg")
	if err != nil {
		log.Fatalf("could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	root, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("failed to parse fixture %q: %v", name, err)
	}

	var points []trisweep.Point
	var windings []int
	for _, polygonEl := range root.FindAll("polygon") {
		ring := parsePoints(polygonEl.Attributes["points"])
		if len(ring) < 3 {
			log.Fatalf("fixture %q: polygon needs at least 3 points, got %d", name, len(ring))
		}
		winding := 1
		if signedArea(ring) < 0 {
			winding = -1
		}
		for i := range ring {
			points = append(points, ring[i], ring[(i+1)%len(ring)])
			windings = append(windings, winding)
		}
	}
	return points, windings
}

func parsePoints(attr string) []trisweep.Point {
	var points []trisweep.Point
	for _, pair := range strings.Fields(attr) {
		parts := strings.Split(pair, ",")
		if len(parts) != 2 {
			log.Fatalf("invalid point %q", pair)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("invalid x value %q: %v", parts[0], err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("invalid y value %q: %v", parts[1], err)
		}
		points = append(points, trisweep.Point{X: x, Y: y})
	}
	return points
}

func signedArea(ring []trisweep.Point) float64 {
	var sum float64
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}
