package sweep

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type scenarioPoint struct {
	X, Y float64
}

type scenario struct {
	Name              string          `yaml:"name"`
	EvenOdd           bool            `yaml:"evenOdd"`
	Points            []scenarioPoint `yaml:"points"`
	Windings          []int           `yaml:"windings"`
	ExpectedArea      *float64        `yaml:"expectedArea"`
	ExpectedTriangles *int            `yaml:"expectedTriangles"`
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func loadScenarios(t *testing.T) []scenario {
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var f scenarioFile
	require.NoError(t, yaml.Unmarshal(data, &f))
	return f.Scenarios
}

func triangleAreaSum(vertices []Point2, indices []int) float64 {
	var total float64
	for i := 0; i+3 <= len(indices); i += 3 {
		a, b, c := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		total += absFloat((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
	}
	return total
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			segments := make([]Segment, len(sc.Windings))
			for i, w := range sc.Windings {
				segments[i] = Segment{
					StartX: sc.Points[2*i].X, StartY: sc.Points[2*i].Y,
					EndX: sc.Points[2*i+1].X, EndY: sc.Points[2*i+1].Y,
					Winding: w,
				}
			}
			vertices, indices, err := Triangulate(segments, sc.EvenOdd)
			require.NoError(t, err)
			require.Zero(t, len(indices)%3)

			if sc.ExpectedArea != nil {
				assert.InDelta(t, *sc.ExpectedArea, triangleAreaSum(vertices, indices), 1e-6)
			}
			if sc.ExpectedTriangles != nil {
				assert.Equal(t, *sc.ExpectedTriangles, len(indices)/3)
			}
		})
	}
}

// TestBowtieLobesDoNotStraddle verifies the even-odd bowtie scenario (S4)
// never emits a triangle whose vertices span both lobes of the crossing.
func TestBowtieLobesDoNotStraddle(t *testing.T) {
	segments := []Segment{
		{StartX: 0, StartY: 0, EndX: 1, EndY: 1, Winding: 1},
		{StartX: 1, StartY: 0, EndX: 0, EndY: 1, Winding: 1},
		{StartX: 0, StartY: 0, EndX: 1, EndY: 0, Winding: 1},
		{StartX: 0, StartY: 1, EndX: 1, EndY: 1, Winding: 1},
	}
	vertices, indices, err := Triangulate(segments, true)
	require.NoError(t, err)
	require.Equal(t, 2, len(indices)/3)

	for i := 0; i+3 <= len(indices); i += 3 {
		lobe := 0
		for _, idx := range indices[i : i+3] {
			if vertices[idx].Y > 0.5 {
				lobe++
			} else if vertices[idx].Y < 0.5 {
				lobe--
			}
		}
		assert.NotZero(t, lobe, "triangle %d straddles the crossing point", i/3)
	}
}
