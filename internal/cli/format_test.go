package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/palette"
)

type closeRecorder struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return c.closeErr
}

func TestWriteReportTo(t *testing.T) {
	rep := report{Palette: "tundra", Level: colour.LevelA}

	ok := &closeRecorder{}
	if err := writeReportTo(ok, formatJSON, rep); err != nil {
		t.Fatalf("writeReportTo() error = %v", err)
	}
	if !ok.closed || !strings.Contains(ok.String(), `"palette": "tundra"`) {
		t.Errorf("writeReportTo() closed = %v, wrote %q", ok.closed, ok.String())
	}

	failing := &closeRecorder{closeErr: errors.New("disk full")}
	err := writeReportTo(failing, formatJSON, rep)
	if err == nil || !strings.Contains(err.Error(), "failed to close output file") {
		t.Errorf("writeReportTo() error = %v, want close failure", err)
	}

	unknown := &closeRecorder{}
	if err := writeReportTo(unknown, "xml", rep); err == nil || !unknown.closed {
		t.Errorf("writeReportTo(xml) error = %v, closed = %v", err, unknown.closed)
	}
}

func TestFormatPaletteTableWrapsLongNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, []byte("an-unusually-long-colour-name light=#ff0000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := palette.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	out := formatPaletteTable(p, colour.RGB{}, colour.LevelA, false)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "an-unusually-long-colour-name ") {
			t.Errorf("name was not wrapped:\n%s", out)
		}
	}
	if !strings.Contains(out, "an-unusually-long-colour ") {
		t.Errorf("expected first %d characters of the name on one line:\n%s", nameMaxWidth, out)
	}
}
