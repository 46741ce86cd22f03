package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/line"
	"github.com/gogpu/line/render"
)

// writeOutput renders lines to path. The format follows the extension:
// .pdf writes vector triangles, anything else a PNG.
func writeOutput(path string, width, height int, bg line.Color, lines []*line.Line) error {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return writePDF(path, width, height, bg, lines)
	}
	return writePNG(path, width, height, bg, lines)
}

func writePNG(path string, width, height int, bg line.Color, lines []*line.Line) error {
	target := render.NewPixmapTarget(width, height)
	target.Clear(bg)
	if err := render.NewSoftwareRenderer().Render(target, lines...); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, target.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// writePDF draws every visible triangle as a filled polygon on a single
// page sized to the scene, one point per pixel.
func writePDF(path string, width, height int, bg line.Color, lines []*line.Line) error {
	w, h := float64(width), float64(height)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	setFillColor(pdf, bg)
	pdf.Rect(0, 0, w, h, "F")

	for _, l := range lines {
		setFillColor(pdf, l.Color())
		for _, tri := range render.Tessellate(l) {
			pdf.Polygon([]gofpdf.PointType{
				{X: tri[0].X, Y: tri[0].Y},
				{X: tri[1].X, Y: tri[1].Y},
				{X: tri[2].X, Y: tri[2].Y},
			}, "F")
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func setFillColor(pdf *gofpdf.Fpdf, c line.Color) {
	r, g, b, _ := c.RGBA()
	pdf.SetFillColor(int(r>>8), int(g>>8), int(b>>8))
}
