/*
 * colors.go, part of cellulose.
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

package cellplot

import "math"

// colors spreads steps fully saturated hues from red to violet, skipping
// the yellows, which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	h := float64(key)*260/float64(steps) + 20
	if h < 55 {
		h -= 20
	} else {
		h += 20
	}
	sector, f := math.Modf(h / 60)
	rise, fall := uint8(255*f), uint8(255*(1-f))
	switch int(sector) % 6 {
	case 0:
		return 255, rise, 0
	case 1:
		return fall, 255, 0
	case 2:
		return 0, 255, rise
	case 3:
		return 0, fall, 255
	case 4:
		return rise, 0, 255
	default:
		return 255, 0, fall
	}
}
