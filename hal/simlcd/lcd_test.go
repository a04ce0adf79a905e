package simlcd

import (
	"testing"

	"sgfx/gfx"
	"sgfx/hal/panel"
)

func TestWindowAutoAdvance(t *testing.T) {
	l := New(8, 8)
	l.SetWindow(2, 3, 4, 4)
	l.WritePixels([]byte{
		0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F,
		0xFF, 0xFF, 0x12, 0x34, 0x56, 0x78,
		0xAA, 0xAA, // past the window end
	})

	want := map[[2]int]gfx.Color{
		{2, 3}: gfx.Red, {3, 3}: gfx.Green, {4, 3}: gfx.Blue,
		{2, 4}: gfx.White, {3, 4}: 0x1234, {4, 4}: 0x5678,
	}
	for xy, c := range want {
		if got := l.Pixel(xy[0], xy[1]); got != c {
			t.Fatalf("pixel %v = %#04x, want %#04x", xy, got, c)
		}
	}
	if got := l.Pixel(2, 5); got != 0 {
		t.Fatalf("write spilled past the window: %#04x", got)
	}
	st := l.Stats()
	if st.Windows != 1 || st.Writes != 1 || st.BytesPushed != 14 || st.Dropped != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestWritesContinueAcrossCalls(t *testing.T) {
	l := New(4, 4)
	l.SetWindow(0, 0, 1, 1)
	l.WritePixels([]byte{0xF8})
	l.WritePixels([]byte{0x00, 0x07})
	l.WritePixels([]byte{0xE0})
	if l.Pixel(0, 0) != gfx.Red || l.Pixel(1, 0) != gfx.Green {
		t.Fatalf("split writes: %#04x %#04x", l.Pixel(0, 0), l.Pixel(1, 0))
	}
}

func TestFillWindow(t *testing.T) {
	l := New(6, 6)
	l.SetWindow(1, 1, 3, 2)
	l.FillWindow(gfx.Blue)
	n := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if l.Pixel(x, y) == gfx.Blue {
				n++
			}
		}
	}
	if n != 6 {
		t.Fatalf("filled %d pixels, want 6", n)
	}
}

func TestOffscreenWindowIsDropped(t *testing.T) {
	l := New(4, 4)
	l.SetWindow(3, 3, 5, 3)
	l.FillWindow(gfx.White)
	if l.Pixel(3, 3) != gfx.White {
		t.Fatal("on-screen part not filled")
	}
	if st := l.Stats(); st.Dropped != 2 {
		t.Fatalf("dropped %d, want 2", st.Dropped)
	}
}

func TestPartlyOffscreenWindowKeepsStride(t *testing.T) {
	l := New(4, 4)
	l.SetWindow(2, 0, 5, 1)
	var buf []byte
	for i := 0; i < 8; i++ {
		hi, lo := gfx.Color(i + 1).Bytes()
		buf = append(buf, hi, lo)
	}
	l.WritePixels(buf)
	want := map[[2]int]gfx.Color{{2, 0}: 1, {3, 0}: 2, {2, 1}: 5, {3, 1}: 6}
	for p, c := range want {
		if got := l.Pixel(p[0], p[1]); got != c {
			t.Fatalf("pixel %v = %d, want %d", p, got, c)
		}
	}
	if st := l.Stats(); st.Dropped != 4 || st.Windows != 1 {
		t.Fatalf("stats = %+v, want 4 dropped in 1 window", st)
	}
}

func TestSnapshot(t *testing.T) {
	l := New(3, 2)
	l.SetWindow(0, 0, 2, 1)
	l.FillWindow(gfx.Red)
	l.SetWindow(1, 1, 1, 1)
	l.FillWindow(gfx.White)

	img := l.Snapshot()
	if c := img.RGBAAt(0, 0); c.R != 0xFF || c.G != 0 || c.B != 0 || c.A != 0xFF {
		t.Fatalf("red pixel = %v", c)
	}
	if c := img.RGBAAt(1, 1); c.R != 0xFF || c.G != 0xFF || c.B != 0xFF {
		t.Fatalf("white pixel = %v", c)
	}
}

func TestBusDecodesCommandStream(t *testing.T) {
	l := New(16, 16)
	bus := NewBus(l)
	dc := bus.DC()

	send := func(cmd byte, data ...byte) {
		dc.Low()
		if err := bus.Tx([]byte{cmd}, nil); err != nil {
			t.Fatalf("Tx: %v", err)
		}
		dc.High()
		if len(data) > 0 {
			if err := bus.Tx(data, nil); err != nil {
				t.Fatalf("Tx: %v", err)
			}
		}
	}

	send(panel.CASET, 0, 4, 0, 5)
	send(panel.PASET, 0, 7, 0, 7)
	send(panel.RAMWR)
	send(0xFF) // never sent as data in practice; a command with no effect
	send(panel.RAMWR, 0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F)

	if l.Pixel(4, 7) != gfx.Red || l.Pixel(5, 7) != gfx.Green {
		t.Fatalf("pixels = %#04x %#04x", l.Pixel(4, 7), l.Pixel(5, 7))
	}
	if l.Pixel(4, 8) != 0 {
		t.Fatal("stream escaped the window")
	}
	if bus.Commands[panel.RAMWR] != 2 || bus.Commands[0xFF] != 1 {
		t.Fatalf("commands = %v", bus.Commands)
	}

	send(panel.SWRESET)
	if l.Pixel(4, 7) != 0 {
		t.Fatal("reset kept the memory")
	}
}
