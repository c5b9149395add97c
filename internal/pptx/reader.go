// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptx reads PowerPoint (Office Open XML presentation) files into the
// shape model used by the converter.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/pdiddy/deck2md/pkg/types"
)

const (
	partContentTypes = "[Content_Types].xml"
	partPresentation = "ppt/presentation.xml"
	partPresRels     = "ppt/_rels/presentation.xml.rels"
	partCoreProps    = "docProps/core.xml"
	slidePrefix      = "ppt/slides/slide"
	relTypeSlide     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
)

// Reader provides access to the slides of one presentation.
type Reader struct {
	closer io.Closer
	files  map[string]*zip.File
	pres   types.Presentation
}

// Open opens a PPTX file and parses all of its slides.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// Parse reads a PPTX archive of the given size from ra.
func Parse(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr)
}

func newReader(zr *zip.Reader) (*Reader, error) {
	r := &Reader{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		r.files[f.Name] = f
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	slidePaths, err := r.slideOrder()
	if err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	r.pres.Slides = make([]types.Slide, 0, len(slidePaths))
	for _, p := range slidePaths {
		slide, err := r.parseSlide(p)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}
		r.pres.Slides = append(r.pres.Slides, slide)
	}

	// Document properties are optional.
	r.parseCoreProperties()

	return r, nil
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// Presentation returns the parsed presentation.
func (r *Reader) Presentation() types.Presentation {
	return r.pres
}

// validate checks that the required package parts exist.
func (r *Reader) validate() error {
	for _, name := range []string{partContentTypes, partPresentation} {
		if _, ok := r.files[name]; !ok {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	return nil
}

// open returns a reader for a part of the archive.
func (r *Reader) open(name string) (io.ReadCloser, error) {
	f, ok := r.files[name]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return f.Open()
}

// decodePart unmarshals an XML part into v.
func (r *Reader) decodePart(name string, v any) error {
	rc, err := r.open(name)
	if err != nil {
		return err
	}
	defer rc.Close()
	return newDecoder(rc).Decode(v)
}

func newDecoder(rd io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(rd)
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

// slideOrder returns slide part names in presentation order. The order comes
// from sldIdLst resolved through the presentation relationships; when either
// is unusable the slide parts are ordered by their number.
func (r *Reader) slideOrder() ([]string, error) {
	var pres presentationXML
	if err := r.decodePart(partPresentation, &pres); err != nil {
		return nil, err
	}

	if ordered := r.slidesFromRelationships(&pres); len(ordered) > 0 {
		return ordered, nil
	}
	return r.slidesByNumber(), nil
}

func (r *Reader) slidesFromRelationships(pres *presentationXML) []string {
	if pres.SlideIDList == nil {
		return nil
	}

	var rels relationshipsXML
	if err := r.decodePart(partPresRels, &rels); err != nil {
		return nil
	}

	targets := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		if rel.Type == relTypeSlide {
			targets[rel.ID] = resolveTarget("ppt", rel.Target)
		}
	}

	ordered := make([]string, 0, len(pres.SlideIDList.SlideID))
	for _, id := range pres.SlideIDList.SlideID {
		target, ok := targets[id.RID]
		if !ok {
			return nil
		}
		if _, ok := r.files[target]; !ok {
			return nil
		}
		ordered = append(ordered, target)
	}
	return ordered
}

func (r *Reader) slidesByNumber() []string {
	var names []string
	for name := range r.files {
		if isSlidePart(name) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ni, nj := slideNumber(names[i]), slideNumber(names[j])
		if ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})
	return names
}

// isSlidePart matches ppt/slides/slideN.xml but not the slide .rels parts.
func isSlidePart(name string) bool {
	if !strings.HasPrefix(name, slidePrefix) || !strings.HasSuffix(name, ".xml") {
		return false
	}
	return !strings.Contains(name, "_rels")
}

// slideNumber extracts N from ppt/slides/slideN.xml.
func slideNumber(name string) int {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, slidePrefix), ".xml"))
	if err != nil {
		return 0
	}
	return n
}

// resolveTarget turns a relationship target into an archive part name.
func resolveTarget(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(base, target)
}

// parseSlide reads the shape tree of one slide.
func (r *Reader) parseSlide(name string) (types.Slide, error) {
	rc, err := r.open(name)
	if err != nil {
		return types.Slide{}, err
	}
	defer rc.Close()

	shapes, err := decodeShapeTree(newDecoder(rc))
	if err != nil {
		return types.Slide{}, err
	}
	return types.Slide{Shapes: shapes}, nil
}

func (r *Reader) parseCoreProperties() {
	var core corePropertiesXML
	if err := r.decodePart(partCoreProps, &core); err != nil {
		return
	}
	r.pres.Metadata = types.Metadata{
		Title:   strings.TrimSpace(core.Title),
		Author:  strings.TrimSpace(core.Creator),
		Subject: strings.TrimSpace(core.Subject),
	}
}
