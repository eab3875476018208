package grid

import (
	"bytes"
	"testing"

	"github.com/tzgrid/tianzige/pkg/geom"
	"github.com/tzgrid/tianzige/pkg/paper"
)

func TestWritePDF(t *testing.T) {
	page, err := paper.Lookup("a4")
	if err != nil {
		t.Fatal(err)
	}
	spec, err := Build(page, mmMargins(15, 15, 20, 10), geom.MinimumBoxes{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, spec, geom.HexToRGB("#808080"), true); err != nil {
		t.Fatalf("WritePDF() error: %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("WritePDF() wrote nothing")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:8])
	}
}

func TestWritePDFNoInnerGridSmaller(t *testing.T) {
	page, err := paper.Lookup("a5")
	if err != nil {
		t.Fatal(err)
	}
	spec, err := Build(page, mmMargins(10, 10, 10, 10), geom.Explicit{SizeMM: 20})
	if err != nil {
		t.Fatal(err)
	}

	var with, without bytes.Buffer
	if err := WritePDF(&with, spec, geom.HexToRGB("#000000"), true); err != nil {
		t.Fatal(err)
	}
	if err := WritePDF(&without, spec, geom.HexToRGB("#000000"), false); err != nil {
		t.Fatal(err)
	}
	// The inner grid adds content; dropping it must shrink the stream.
	if without.Len() >= with.Len() {
		t.Errorf("no-inner output (%d bytes) not smaller than full output (%d bytes)",
			without.Len(), with.Len())
	}
}
