// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/pdiddy/deck2md/pkg/types"
)

// decodeShapeTree walks the direct children of p:spTree in document order
// and converts each shape element. Non-shape children are skipped.
func decodeShapeTree(dec *xml.Decoder) ([]types.Shape, error) {
	if err := seekElement(dec, "spTree"); err != nil {
		return nil, err
	}

	var shapes []types.Shape
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading shape tree: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			shape, err := decodeShape(dec, el)
			if err != nil {
				return nil, err
			}
			if shape != nil {
				shapes = append(shapes, shape)
			}
		case xml.EndElement:
			if el.Name.Local == "spTree" {
				return shapes, nil
			}
		}
	}
}

// seekElement advances dec past the first start element named local.
func seekElement(dec *xml.Decoder, local string) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("no %s element", local)
		}
		if err != nil {
			return err
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == local {
			return nil
		}
	}
}

// decodeShape consumes one child of the shape tree. It returns nil for
// elements that are not shapes.
func decodeShape(dec *xml.Decoder, start xml.StartElement) (types.Shape, error) {
	switch start.Name.Local {
	case "sp":
		var sp spXML
		if err := dec.DecodeElement(&sp, &start); err != nil {
			return nil, fmt.Errorf("decoding shape: %w", err)
		}
		return shapeFromSp(&sp), nil

	case "pic":
		var pic picXML
		if err := dec.DecodeElement(&pic, &start); err != nil {
			return nil, fmt.Errorf("decoding picture: %w", err)
		}
		return types.DecorativeShape{Name: pic.NvPicPr.CNvPr.Name, Visual: types.VisualPicture}, nil

	case "cxnSp":
		var cxn cxnSpXML
		if err := dec.DecodeElement(&cxn, &start); err != nil {
			return nil, fmt.Errorf("decoding connector: %w", err)
		}
		return types.DecorativeShape{Name: cxn.NvCxnSpPr.CNvPr.Name, Visual: types.VisualLine}, nil

	case "grpSp":
		var grp grpSpXML
		if err := dec.DecodeElement(&grp, &start); err != nil {
			return nil, fmt.Errorf("decoding group: %w", err)
		}
		return types.DecorativeShape{Name: grp.NvGrpSpPr.CNvPr.Name, Visual: types.VisualGroup}, nil

	case "graphicFrame":
		var gf graphicFrameXML
		if err := dec.DecodeElement(&gf, &start); err != nil {
			return nil, fmt.Errorf("decoding graphic frame: %w", err)
		}
		return shapeFromGraphicFrame(&gf), nil
	}

	if err := dec.Skip(); err != nil {
		return nil, fmt.Errorf("skipping %s: %w", start.Name.Local, err)
	}
	return nil, nil
}

// shapeFromSp classifies a regular shape. A shape whose text is blank is
// decorative, described by its geometry.
func shapeFromSp(sp *spXML) types.Shape {
	name := sp.NvSpPr.CNvPr.Name
	ph := placeholderType(sp.NvSpPr.NvPr.Ph)

	if sp.TxBody != nil {
		text := types.TextShape{
			Name:        name,
			Placeholder: ph,
			Paragraphs:  extractParagraphs(sp.TxBody),
		}
		if strings.TrimSpace(text.Text()) != "" {
			return text
		}
	}

	shape := types.DecorativeShape{Name: name}
	switch {
	case sp.NvSpPr.NvPr.Ph != nil:
		shape.RawType = "placeholder"
	case sp.NvSpPr.CNvSpPr.TxBox == "1":
		shape.RawType = "textBox"
	case sp.SpPr.PrstGeom != nil:
		shape.Visual, shape.RawType = geometryVisual(sp.SpPr.PrstGeom.Prst)
	case sp.SpPr.CustGeom != nil:
		shape.RawType = "freeform"
	default:
		shape.Visual = types.VisualAutoShape
	}
	return shape
}

func placeholderType(ph *phXML) types.PlaceholderType {
	if ph == nil {
		return types.PlaceholderNone
	}
	switch ph.Type {
	case "title", "ctrTitle":
		return types.PlaceholderTitle
	case "hdr":
		return types.PlaceholderHeader
	case "", "body", "obj":
		return types.PlaceholderBody
	}
	return types.PlaceholderType(ph.Type)
}

// geometryVisual maps a preset geometry name to a visual kind.
func geometryVisual(prst string) (types.VisualKind, string) {
	switch prst {
	case "rect":
		return types.VisualRectangle, prst
	case "roundRect":
		return types.VisualRoundedRectangle, prst
	case "ellipse":
		return types.VisualOval, prst
	case "line", "straightConnector1":
		return types.VisualLine, prst
	}
	return types.VisualAutoShape, prst
}

func shapeFromGraphicFrame(gf *graphicFrameXML) types.Shape {
	name := gf.NvGraphicFramePr.CNvPr.Name
	data := gf.Graphic.GraphicData

	switch {
	case data.Tbl != nil:
		return types.TableShape{Name: name, Grid: extractTable(data.Tbl)}
	case data.URI == uriChart:
		return types.DecorativeShape{Name: name, Visual: types.VisualChart}
	case data.URI == uriTable:
		return types.TableShape{Name: name}
	}
	raw := "graphicFrame"
	if data.URI != "" {
		raw = path.Base(data.URI)
	}
	return types.DecorativeShape{Name: name, RawType: raw}
}

func extractParagraphs(body *txBodyXML) []types.Paragraph {
	paras := make([]types.Paragraph, 0, len(body.P))
	for i := range body.P {
		paras = append(paras, extractParagraph(&body.P[i]))
	}
	return paras
}

// extractParagraph resolves text, level, bullet flag and first-run font size.
// Line breaks within the paragraph become '\v'.
func extractParagraph(p *pXML) types.Paragraph {
	var para types.Paragraph
	if p.PPr != nil {
		para.Level = p.PPr.Lvl
		para.Bullet = p.PPr.BuChar != nil || p.PPr.BuAutoNum != nil || p.PPr.BuBlip != nil
	}

	var text strings.Builder
	firstRun := true
	for _, item := range p.Items {
		switch item.XMLName.Local {
		case "r":
			if firstRun && item.RPr != nil && item.RPr.Sz > 0 {
				size := float64(item.RPr.Sz) / 100
				para.FontSize = &size
			}
			firstRun = false
			text.WriteString(item.T)
		case "fld":
			text.WriteString(item.T)
		case "br":
			// Soft breaks stay inside the paragraph as a vertical tab so
			// paragraph boundaries remain the only newlines.
			text.WriteString("\v")
		}
	}
	para.Text = text.String()
	return para
}

// extractTable returns the cell texts, each cell's paragraphs joined by
// newlines.
func extractTable(tbl *tblXML) types.TableGrid {
	grid := make(types.TableGrid, 0, len(tbl.Tr))
	for _, tr := range tbl.Tr {
		row := make([]string, 0, len(tr.Tc))
		for _, tc := range tr.Tc {
			var cell string
			if tc.TxBody != nil {
				parts := make([]string, len(tc.TxBody.P))
				for i := range tc.TxBody.P {
					parts[i] = extractParagraph(&tc.TxBody.P[i]).Text
				}
				cell = strings.Join(parts, "\n")
			}
			row = append(row, cell)
		}
		grid = append(grid, row)
	}
	return grid
}
