package sweep

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/font/basicfont"
)

const dbgDrawPadding = 16

// DumpPNG renders the resulting triangle mesh (filled green, cyan outline,
// each triangle labelled with its index) and the input segments (white) on
// a black background to /tmp/sweep.png and echoes it to the terminal via iTerm2's
// inline image protocol. This is for development use only; it is never
// called from Triangulate itself.
func DumpPNG(segments []Segment, scale float64, vertices []Point2, indices []int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	consider := func(x, y float64) {
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	for _, s := range segments {
		consider(s.StartX, s.StartY)
		consider(s.EndX, s.EndY)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetFontFace(basicfont.Face7x13)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleWinding()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2 / scale)
	for i := 0; i+3 <= len(indices); i += 3 {
		a, b, d := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 1, 1)
	for _, s := range segments {
		c.DrawLine(s.StartX, s.StartY, s.EndX, s.EndY)
		c.Stroke()
	}

	// Label each triangle with its index at its centroid. We have to go
	// back to identity to draw text, so convert the centroid to native
	// coordinates first.
	c.SetRGB(1, 1, 1)
	for i := 0; i+3 <= len(indices); i += 3 {
		a, b, d := vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]
		centerX, centerY := c.TransformPoint((a.X+b.X+d.X)/3, (a.Y+b.Y+d.Y)/3)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(fmt.Sprintf("%d", i/3), centerX, centerY, 0.5, 0.5)
		c.Pop()
	}

	c.SavePNG("/tmp/sweep.png")
	imgcat.CatFile("/tmp/sweep.png", os.Stdout)
}
