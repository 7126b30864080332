package render

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"minautomata/internal/core"
	"minautomata/internal/sims/sand"
)

func TestFillPaletteRGBAClampsIndex(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 3*4)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)

	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, []uint8{0, 1, 2}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette should clear buffer, byte %d = %d", i, b)
		}
	}
}

func TestImageScalesCells(t *testing.T) {
	w := sand.New(2, 1)
	if err := w.Paint(1, 0, sand.Water); err != nil {
		t.Fatal(err)
	}
	img, err := Image(w.Size(), w.Cells(), w.Palette(), 3)
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(5, 2); got != sand.Water.Colour() {
		t.Fatalf("pixel (5,2) = %+v", got)
	}
	if got := img.RGBAAt(2, 0); got != sand.Background.Colour() {
		t.Fatalf("pixel (2,0) = %+v", got)
	}

	if _, err := Image(core.Size{W: 3, H: 3}, w.Cells(), w.Palette(), 1); err == nil {
		t.Fatal("mismatched cell count should fail")
	}
}

func TestWritePNG(t *testing.T) {
	w := sand.New(4, 4)
	if err := w.Paint(0, 0, sand.Salt); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "snap.png")
	if err := WritePNG(path, w, 2); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Fatalf("salt pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}
