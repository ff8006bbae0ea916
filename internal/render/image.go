// Package render provides paletted sprite images and the primitives used to
// paint them: fill, rectangles, circles, pixels and text.
package render

// Image is a small paletted bitmap. Each pixel is a palette index; 0 is transparent.
type Image struct {
	W, H int
	Pix  []uint8

	rev uint64 // bumped on every mutation so frontends can cache uploads
}

// NewImage creates a blank (fully transparent) image.
func NewImage(w, h int) *Image {
	w = max(w, 0)
	h = max(h, 0)
	return &Image{W: w, H: h, Pix: make([]uint8, w*h)}
}

// Rev returns the mutation counter.
func (img *Image) Rev() uint64 { return img.rev }

// Pixel reads one pixel. Out-of-bounds reads return transparent.
func (img *Image) Pixel(x, y int) uint8 {
	if x >= 0 && x < img.W && y >= 0 && y < img.H {
		return img.Pix[y*img.W+x]
	}
	return ColorTransparent
}

// SetPixel writes one pixel. Out-of-bounds writes are ignored.
func (img *Image) SetPixel(x, y int, c uint8) {
	if x >= 0 && x < img.W && y >= 0 && y < img.H {
		img.Pix[y*img.W+x] = c
		img.rev++
	}
}

// Fill sets every pixel to c.
func (img *Image) Fill(c uint8) {
	for i := range img.Pix {
		img.Pix[i] = c
	}
	img.rev++
}

// FillRect fills the w x h rectangle at (x, y), clipped to the image.
func (img *Image) FillRect(x, y, w, h int, c uint8) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, img.W), min(y+h, img.H)
	for py := y0; py < y1; py++ {
		row := img.Pix[py*img.W : (py+1)*img.W]
		for px := x0; px < x1; px++ {
			row[px] = c
		}
	}
	img.rev++
}

// DrawCircle draws a circle outline of radius r centered on (cx, cy)
// using the midpoint algorithm.
func (img *Image) DrawCircle(cx, cy, r int, c uint8) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		img.plot8(cx, cy, x, y, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	img.rev++
}

func (img *Image) plot8(cx, cy, x, y int, c uint8) {
	pts := [8][2]int{
		{cx + x, cy + y}, {cx - x, cy + y}, {cx + x, cy - y}, {cx - x, cy - y},
		{cx + y, cy + x}, {cx - y, cy + x}, {cx + y, cy - x}, {cx - y, cy - x},
	}
	for _, p := range pts {
		if p[0] >= 0 && p[0] < img.W && p[1] >= 0 && p[1] < img.H {
			img.Pix[p[1]*img.W+p[0]] = c
		}
	}
}

// Dominant returns the most common non-transparent color, or transparent for an empty image.
// Text frontends use it to pick a glyph color.
func (img *Image) Dominant() uint8 {
	var counts [len(Palette)]int
	for _, c := range img.Pix {
		if c != ColorTransparent && int(c) < len(counts) {
			counts[c]++
		}
	}
	best := uint8(ColorTransparent)
	for c := 1; c < len(counts); c++ {
		if counts[c] > counts[best] {
			best = uint8(c)
		}
	}
	return best
}

// AppendRGBA appends the image as 8-bit RGBA bytes, row-major, to dst.
func (img *Image) AppendRGBA(dst []byte) []byte {
	for _, c := range img.Pix {
		p := RGBA(c)
		dst = append(dst, p.R, p.G, p.B, p.A)
	}
	return dst
}
