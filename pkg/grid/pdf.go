package grid

import (
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/tzgrid/tianzige/pkg/geom"
)

// pdfCanvas adapts a PDF page content builder to the Canvas interface.
type pdfCanvas struct {
	page *document.Page
}

func (c *pdfCanvas) SetStrokeColor(rgb geom.RGB) {
	c.page.SetStrokeColor(color.DeviceRGB{rgb.R, rgb.G, rgb.B})
}

func (c *pdfCanvas) SetLineDash(pattern []float64) {
	c.page.SetLineDash(pattern, 0)
}

func (c *pdfCanvas) Line(x0, y0, x1, y1 float64) {
	c.page.MoveTo(x0, y0)
	c.page.LineTo(x1, y1)
	c.page.Stroke()
}

// WritePDF renders the grid as a single-page PDF document to w.
// Write errors from the underlying surface propagate unchanged.
func WritePDF(w io.Writer, spec Spec, rgb geom.RGB, innerGrid bool) error {
	pageSize := &pdf.Rectangle{URx: spec.Page.Width, URy: spec.Page.Height}
	page, err := document.WriteSinglePage(w, pageSize, pdf.V1_7, nil)
	if err != nil {
		return err
	}
	Render(&pdfCanvas{page: page}, spec, rgb, innerGrid)
	return page.Close()
}
