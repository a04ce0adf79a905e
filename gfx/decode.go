package gfx

// DecodePixels expands len(dst)/2 pixels of p, starting at pixel index, into
// big-endian RGB565: "on" pixels become brush FG, "off" pixels brush BG.
// It returns the index following the last decoded pixel.
//
// There is no range check beyond the slice bounds; callers keep
// index+len(dst)/2 within p.Len().
func DecodePixels(p Pixmap, b Brush, index int, dst []byte) int {
	fgHi, fgLo := b.FG.Bytes()
	bgHi, bgLo := b.BG.Bytes()
	for i := 0; i+1 < len(dst); i += 2 {
		if p.Bit(index) {
			dst[i] = fgHi
			dst[i+1] = fgLo
		} else {
			dst[i] = bgHi
			dst[i+1] = bgLo
		}
		index++
	}
	return index
}
