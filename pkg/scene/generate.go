package scene

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/philipparndt/golines/pkg/geometry"
	"github.com/philipparndt/golines/pkg/lines"
)

// Generate builds the line store described by the scene. Generation is
// seeded, so the same scene always yields the same store. Each line is a
// random walk: a random start inside the bounds followed by bounded steps,
// which keeps polylines locally coherent instead of jumping across the
// whole volume.
func Generate(s *Scene) *lines.Store {
	rng := rand.New(rand.NewSource(s.Seed))
	half := s.Bounds.Size / 2
	step := s.Bounds.Size * 0.08

	result := make([]lines.Line, s.Lines)
	for i := range result {
		count := s.Points.Min
		if s.Points.Max > s.Points.Min {
			count += rng.Intn(s.Points.Max - s.Points.Min + 1)
		}

		points := make([]geometry.Vector3, count)
		points[0] = geometry.NewVector3(
			(rng.Float64()*2-1)*half,
			(rng.Float64()*2-1)*half,
			(rng.Float64()*2-1)*half,
		)
		for p := 1; p < count; p++ {
			delta := geometry.NewVector3(
				(rng.Float64()*2-1)*step,
				(rng.Float64()*2-1)*step,
				(rng.Float64()*2-1)*step,
			)
			points[p] = clampToBounds(points[p-1].Add(delta), half)
		}

		result[i] = lines.Line{
			Points:    points,
			BaseColor: paletteColor(s, i),
		}
	}

	return lines.NewStore(result)
}

// paletteColor spreads hues evenly over the line indices so neighbouring
// lines stay visually distinguishable
func paletteColor(s *Scene, index int) lines.Color {
	hue := float64(index) / float64(s.Lines) * 360.0
	c := colorful.Hsv(hue, s.Palette.Saturation, s.Palette.Value)
	return lines.Color{float32(c.R), float32(c.G), float32(c.B)}
}

func clampToBounds(v geometry.Vector3, half float64) geometry.Vector3 {
	clamp := func(x float64) float64 {
		if x < -half {
			return -half
		}
		if x > half {
			return half
		}
		return x
	}
	return geometry.NewVector3(clamp(v.X), clamp(v.Y), clamp(v.Z))
}
