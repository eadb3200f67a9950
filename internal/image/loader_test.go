package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func solid(c color.Color, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "red.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solid(color.RGBA{R: 255, A: 255}, 4, 3)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("Load() bounds = %v, want 4x3", b)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: "cannot be empty"},
		{name: "missing", path: filepath.Join(dir, "nope.png"), want: "not found"},
		{name: "directory", path: dir, want: "directory"},
		{name: "undecodable", path: garbage, want: "failed to decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileLoader().Load(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load(%q) error = %v, want %q", tt.path, err, tt.want)
			}
		})
	}
}

func TestIsImageFile(t *testing.T) {
	tests := map[string]bool{
		"wall.jpg":  true,
		"WALL.PNG":  true,
		"a.webp":    true,
		"a.gif":     true,
		"a.jpeg":    true,
		"notes.txt": false,
		"palette":   false,
	}
	for path, want := range tests {
		if got := IsImageFile(path); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestContentSeed(t *testing.T) {
	red := solid(color.RGBA{R: 255, A: 255}, 50, 50)
	blue := solid(color.RGBA{B: 255, A: 255}, 50, 50)

	if ContentSeed(red) != ContentSeed(solid(color.RGBA{R: 255, A: 255}, 50, 50)) {
		t.Error("ContentSeed() differs for identical images")
	}
	if ContentSeed(red) == ContentSeed(blue) {
		t.Error("ContentSeed() equal for different images")
	}
	if ContentSeed(red) == ContentSeed(solid(color.RGBA{R: 255, A: 255}, 50, 51)) {
		t.Error("ContentSeed() ignores dimensions")
	}
	if ContentSeed(nil) == 0 || ContentSeed(red) == 0 {
		t.Error("ContentSeed() returned zero")
	}
}
