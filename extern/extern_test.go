// seehuhn.de/go/vecgeom - a 2D vector graphics geometry engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package extern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelFormatBitDepths(t *testing.T) {
	cases := []struct {
		f        PixelFormat
		bits     int
		bytes    int
	}{
		{FormatPAL8, 8, 1},
		{FormatRGB565, 16, 2},
		{FormatRGB888, 24, 3},
		{FormatARGB4444, 16, 2},
		{FormatARGB1555, 16, 2},
		{FormatARGB8888, 32, 4},
		{FormatXRGB8888, 32, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.bits, c.f.BitsPerPixel())
		assert.Equal(t, c.bytes, c.f.BytesPerPixel())

		be := c.f | BigEndian
		assert.Equal(t, c.bits, be.BitsPerPixel())
	}
}

func TestBitmapRect(t *testing.T) {
	b := &Bitmap{Format: FormatARGB8888, Width: 4, Height: 3, RowBytes: 16}
	r := b.Rect()
	assert.Equal(t, 4, r.Dx())
	assert.Equal(t, 3, r.Dy())
}

func TestShaderRefcounting(t *testing.T) {
	s := &Shader{Type: ShaderLinear}
	s.Retain()
	s.Retain()
	assert.False(t, s.Release())
	assert.True(t, s.Release())
}
