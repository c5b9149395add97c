// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptxtest builds small PPTX archives for tests.
package pptxtest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"
)

// Deck describes a presentation. Each slide is the inner XML of its
// p:spTree, usually assembled from the shape helpers below.
type Deck struct {
	Slides []string
	Title  string // docProps/core.xml title; omitted when empty
	Author string
}

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
</Types>`

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
</Relationships>`

// Build returns the bytes of a PPTX archive for d.
func Build(d Deck) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := map[string]string{
		"[Content_Types].xml":             contentTypes,
		"_rels/.rels":                     rootRels,
		"ppt/presentation.xml":            presentation(len(d.Slides)),
		"ppt/_rels/presentation.xml.rels": presentationRels(len(d.Slides)),
	}
	for i, s := range d.Slides {
		parts[fmt.Sprintf("ppt/slides/slide%d.xml", i+1)] = Slide(s)
	}
	if d.Title != "" || d.Author != "" {
		parts["docProps/core.xml"] = coreProps(d.Title, d.Author)
	}

	for _, name := range sortedKeys(parts) {
		w, err := zw.Create(name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write builds d and writes it to path.
func Write(t testing.TB, path string, d Deck) {
	t.Helper()
	data, err := Build(d)
	if err != nil {
		t.Fatalf("building pptx: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func presentation(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:sldIdLst>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i)
	}
	b.WriteString(`</p:sldIdLst>
  <p:sldSz cx="9144000" cy="6858000"/>
</p:presentation>`)
	return b.String()
}

func presentationRels(n int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i, i)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func coreProps(title, author string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>` + Escape(title) + `</dc:title>
  <dc:creator>` + Escape(author) + `</dc:creator>
</cp:coreProperties>`
}

// Slide wraps shape tree content into a complete slide part.
func Slide(shapes string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:cSld>
    <p:spTree>
      <p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
      <p:grpSpPr/>
` + shapes + `
    </p:spTree>
  </p:cSld>
</p:sld>`
}

// Shapes concatenates shape elements.
func Shapes(shapes ...string) string {
	return strings.Join(shapes, "\n")
}

// Escape escapes text for XML content and attributes.
func Escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

// Para is a plain paragraph.
func Para(text string) string {
	return `<a:p><a:r><a:rPr lang="en-US"/><a:t>` + Escape(text) + `</a:t></a:r></a:p>`
}

// Bullet is a character-bullet paragraph at the given level.
func Bullet(text string, level int) string {
	return fmt.Sprintf(`<a:p><a:pPr lvl="%d"><a:buChar char="•"/></a:pPr><a:r><a:t>%s</a:t></a:r></a:p>`, level, Escape(text))
}

// Numbered is an auto-numbered paragraph.
func Numbered(text string) string {
	return `<a:p><a:pPr><a:buAutoNum type="arabicPeriod"/></a:pPr><a:r><a:t>` + Escape(text) + `</a:t></a:r></a:p>`
}

// SizedPara is a plain paragraph whose run declares a font size in points.
func SizedPara(text string, points int) string {
	return fmt.Sprintf(`<a:p><a:r><a:rPr lang="en-US" sz="%d"/><a:t>%s</a:t></a:r></a:p>`, points*100, Escape(text))
}

// Placeholder is a placeholder shape of type phType ("title", "body", ...)
// holding the given paragraphs.
func Placeholder(name, phType string, paras ...string) string {
	ph := `<p:ph/>`
	if phType != "" {
		ph = `<p:ph type="` + phType + `"/>`
	}
	return `<p:sp><p:nvSpPr><p:cNvPr id="2" name="` + Escape(name) + `"/><p:cNvSpPr/><p:nvPr>` + ph + `</p:nvPr></p:nvSpPr><p:spPr/>` +
		`<p:txBody><a:bodyPr/>` + strings.Join(paras, "") + `</p:txBody></p:sp>`
}

// TextBox is a text box shape.
func TextBox(name string, paras ...string) string {
	return `<p:sp><p:nvSpPr><p:cNvPr id="3" name="` + Escape(name) + `"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>` +
		`<p:spPr><a:prstGeom prst="rect"/></p:spPr><p:txBody><a:bodyPr/>` + strings.Join(paras, "") + `</p:txBody></p:sp>`
}

// AutoShape is a text-less shape with the given preset geometry.
func AutoShape(name, prst string) string {
	return `<p:sp><p:nvSpPr><p:cNvPr id="4" name="` + Escape(name) + `"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>` +
		`<p:spPr><a:prstGeom prst="` + prst + `"/></p:spPr></p:sp>`
}

// Picture is a picture element.
func Picture(name string) string {
	return `<p:pic><p:nvPicPr><p:cNvPr id="5" name="` + Escape(name) + `"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>` +
		`<p:blipFill><a:blip r:embed="rId2"/></p:blipFill><p:spPr/></p:pic>`
}

// Connector is a connector line.
func Connector(name string) string {
	return `<p:cxnSp><p:nvCxnSpPr><p:cNvPr id="6" name="` + Escape(name) + `"/><p:cNvCxnSpPr/><p:nvPr/></p:nvCxnSpPr><p:spPr/></p:cxnSp>`
}

// Group wraps child shapes in a group.
func Group(name string, children ...string) string {
	return `<p:grpSp><p:nvGrpSpPr><p:cNvPr id="7" name="` + Escape(name) + `"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		strings.Join(children, "") + `</p:grpSp>`
}

// Chart is a graphic frame referencing a chart.
func Chart(name string) string {
	return GraphicFrame(name, "http://schemas.openxmlformats.org/drawingml/2006/chart", `<c:chart xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" r:id="rId3"/>`)
}

// GraphicFrame is a graphic frame with arbitrary graphic data.
func GraphicFrame(name, uri, data string) string {
	return `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="8" name="` + Escape(name) + `"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>` +
		`<p:xfrm/><a:graphic><a:graphicData uri="` + uri + `">` + data + `</a:graphicData></a:graphic></p:graphicFrame>`
}

// Table is a graphic frame holding a table with one paragraph per cell.
func Table(name string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<a:tbl><a:tblGrid/>`)
	for _, row := range rows {
		b.WriteString(`<a:tr h="370840">`)
		for _, cell := range row {
			b.WriteString(`<a:tc><a:txBody><a:bodyPr/>` + Para(cell) + `</a:txBody></a:tc>`)
		}
		b.WriteString(`</a:tr>`)
	}
	b.WriteString(`</a:tbl>`)
	return GraphicFrame(name, "http://schemas.openxmlformats.org/drawingml/2006/table", b.String())
}
