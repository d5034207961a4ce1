/*
 * crosssection.go, part of cellulose.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package cellplot draws cross sections of cellulose crystals, with one
// glyph per chain, as seen down the chain axis.
package cellplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/cellulose"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Projection returns the centroid of each chain of c projected onto the
// plane perpendicular to the chain axis. The x axis of the plane is the
// projection of the a cell vector.
func Projection(c *cellulose.Crystal) (plotter.XYs, error) {
	u := c.Lattice[2]
	a := c.Lattice[0]
	if floats.Norm(u[:], 2) == 0 {
		return nil, fmt.Errorf("cellplot: the crystal has no periodic box")
	}
	floats.Scale(1/floats.Norm(u[:], 2), u[:])
	e1 := a
	floats.AddScaled(e1[:], -floats.Dot(a[:], u[:]), u[:])
	floats.Scale(1/floats.Norm(e1[:], 2), e1[:])
	e2 := [3]float64{u[1]*e1[2] - u[2]*e1[1], u[2]*e1[0] - u[0]*e1[2], u[0]*e1[1] - u[1]*e1[0]}
	ret := make(plotter.XYs, len(c.Chains))
	for i, ch := range c.Chains {
		var cen [3]float64
		n := ch.Coords.NVecs()
		for j := 0; j < n; j++ {
			v := ch.Coords.Vec(j)
			floats.Add(cen[:], v[:])
		}
		floats.Scale(1/float64(n), cen[:])
		ret[i].X = floats.Dot(cen[:], e1[:])
		ret[i].Y = floats.Dot(cen[:], e2[:])
	}
	return ret, nil
}

func basicPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.Title.Text = title
	p.X.Label.Text = "x (Å)"
	p.Y.Label.Text = "y (Å)"
	p.Add(plotter.NewGrid())
	return p
}

// CrossSection plots the chains of c as seen down the chain axis, and saves
// the plot to filename, in the format given by its extension. Chains
// pointing up are drawn as circles, chains pointing down as triangles, and
// each chain role of the unit cell gets its own color.
func CrossSection(c *cellulose.Crystal, title, filename string) error {
	if len(c.Chains) == 0 {
		return fmt.Errorf("cellplot: no chains to plot")
	}
	points, err := Projection(c)
	if err != nil {
		return err
	}
	p := basicPlot(title)
	roles := 1
	for _, ch := range c.Chains {
		roles = max(roles, ch.Role+1)
	}
	var up, down bool
	for i, ch := range c.Chains {
		s, err := plotter.NewScatter(points[i : i+1])
		if err != nil {
			return err
		}
		r, g, b := colors(ch.Role, roles)
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		s.GlyphStyle.Radius = vg.Points(5)
		if ch.Sense == cellulose.Down {
			s.GlyphStyle.Shape = draw.PyramidGlyph{}
			if !down {
				p.Legend.Add("down", s)
				down = true
			}
		} else {
			s.GlyphStyle.Shape = draw.CircleGlyph{}
			if !up {
				p.Legend.Add("up", s)
				up = true
			}
		}
		p.Add(s)
	}
	square(p, points)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}

// square sets the same range on both axes, so distances are not distorted.
func square(p *plot.Plot, points plotter.XYs) {
	xmin, xmax, ymin, ymax := plotter.XYRange(points)
	half := math.Max(xmax-xmin, ymax-ymin)/2 + 5
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}
