package gfx

import (
	"errors"
	"math/rand"
	"testing"
)

func TestExtractWholeAtlasIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	sizes := [][2]uint16{{8, 1}, {16, 16}, {32, 8}, {12, 2}, {5, 8}, {1, 256}, {256, 1}}
	for _, sz := range sizes {
		for _, inverted := range []bool{false, true} {
			src := randomPixmap(rng, sz[0], sz[1], inverted)
			var s Scratch
			got, err := Extract(&s, src, Pt(0, 0), sz[0], sz[1])
			if err != nil {
				t.Fatalf("Extract %v: %v", sz, err)
			}
			if got.Width != sz[0] || got.Height != sz[1] || got.Inverted != inverted {
				t.Fatalf("Extract %v: got %dx%d inverted=%v", sz, got.Width, got.Height, got.Inverted)
			}
			for i := range src.Data {
				if got.Data[i] != src.Data[i] {
					t.Fatalf("Extract %v: byte %d = %#02x, want %#02x", sz, i, got.Data[i], src.Data[i])
				}
			}
		}
	}
}

func TestExtractInside(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	src := randomPixmap(rng, 37, 21, false)
	var s Scratch
	got, err := Extract(&s, src, Pt(5, 3), 15, 17)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for y := 0; y < 17; y++ {
		for x := 0; x < 15; x++ {
			if got.At(x, y) != src.At(5+x, 3+y) {
				t.Fatalf("pixel (%d,%d) differs from source (%d,%d)", x, y, 5+x, 3+y)
			}
		}
	}
}

func TestExtractClampsPastEnd(t *testing.T) {
	// 16x2 source: bytes 0..3, the bottom row is bytes 2 and 3.
	src := Pixmap{Data: []byte{0x00, 0x00, 0x0F, 0xA5}, Width: 16, Height: 2}
	var s Scratch
	got, err := Extract(&s, src, Pt(8, 1), 16, 1)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	// The first 8 pixels come from byte 3, the next 8 would come from
	// byte 4 and are read from byte 3 again.
	if got.Data[0] != 0xA5 || got.Data[1] != 0xA5 {
		t.Fatalf("extracted % x, want a5 a5", got.Data[:2])
	}
}

func TestExtractClampModel(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for iter := 0; iter < 2000; iter++ {
		sw := uint16(1 + rng.Intn(40))
		sh := uint16(1 + rng.Intn(40))
		if int(sw)*int(sh) < 8 {
			continue
		}
		src := randomPixmap(rng, sw, sh, rng.Intn(2) == 0)
		w := uint16(1 + rng.Intn(16))
		h := uint16(1 + rng.Intn(MaxExtractPixels/int(w)))
		at := Pt(int16(rng.Intn(int(sw)+8)), int16(rng.Intn(int(sh)+8)))

		var s Scratch
		got, err := Extract(&s, src, at, w, h)
		if err != nil {
			t.Fatalf("Extract %dx%d at %v from %dx%d: %v", w, h, at, sw, sh, err)
		}
		last := src.Len()/8 - 1
		for row := 0; row < int(h); row++ {
			for col := 0; col < int(w); col++ {
				bit := int(at.X) + col + (int(at.Y)+row)*int(sw)
				idx := bit / 8
				if idx > last {
					idx = last
				}
				want := (src.Data[idx] >> (bit % 8)) & 1
				di := row*int(w) + col
				if have := (got.Data[di/8] >> (di % 8)) & 1; have != want {
					t.Fatalf("iter %d: %dx%d at %v from %dx%d: pixel (%d,%d) = %d, want %d",
						iter, w, h, at, sw, sh, col, row, have, want)
				}
			}
		}
	}
}

func TestExtractRejects(t *testing.T) {
	src := NewPixmap(64, 64, false)
	var s Scratch

	if _, err := Extract(&s, src, Pt(0, 0), 17, 16); !errors.Is(err, ErrExtractTooLarge) {
		t.Fatalf("17x16 err = %v, want ErrExtractTooLarge", err)
	}
	if _, err := Extract(&s, src, Pt(0, 0), 16, 16); err != nil {
		t.Fatalf("16x16 err = %v, want nil", err)
	}
	if _, err := Extract(&s, src, Pt(-1, 0), 4, 4); !errors.Is(err, ErrBadRect) {
		t.Fatalf("negative origin err = %v, want ErrBadRect", err)
	}
	tiny := Pixmap{Data: []byte{0x01}, Width: 2, Height: 2}
	if err := tiny.Validate(); err != nil {
		t.Fatalf("2x2 pixmap in one byte: %v", err)
	}
	if _, err := Extract(&s, tiny, Pt(0, 0), 1, 1); !errors.Is(err, ErrTinyAtlas) || errors.Is(err, ErrShortPixmap) {
		t.Fatalf("sub-byte source err = %v, want ErrTinyAtlas", err)
	}
}
