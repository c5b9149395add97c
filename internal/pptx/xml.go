// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import "encoding/xml"

// Graphic data URIs identifying the content of a graphic frame.
const (
	uriTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
	uriChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
)

// presentationXML represents ppt/presentation.xml.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIDList *slideIDListXML `xml:"sldIdLst"`
}

type slideIDListXML struct {
	SlideID []slideIDXML `xml:"sldId"`
}

type slideIDXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// relationshipsXML represents a .rels part.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName xml.Name `xml:"coreProperties"`
	Title   string   `xml:"title"`
	Subject string   `xml:"subject"`
	Creator string   `xml:"creator"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// spXML is a regular shape: placeholder, text box or auto shape.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML   `xml:"cNvPr"`
	CNvSpPr cNvSpPrXML `xml:"cNvSpPr"`
	NvPr    nvPrXML    `xml:"nvPr"`
}

type cNvSpPrXML struct {
	TxBox string `xml:"txBox,attr"` // "1" for text boxes
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"`
}

type phXML struct {
	Type string `xml:"type,attr"` // title, ctrTitle, hdr, body, ...; absent means body
}

type spPrXML struct {
	PrstGeom *prstGeomXML `xml:"prstGeom"`
	CustGeom *struct{}    `xml:"custGeom"`
}

type prstGeomXML struct {
	Prst string `xml:"prst,attr"` // rect, roundRect, ellipse, line, ...
}

type txBodyXML struct {
	P []pXML `xml:"p"`
}

// pXML is a paragraph. Runs, breaks and fields land in Items in document
// order so their text concatenates correctly.
type pXML struct {
	PPr   *pPrXML       `xml:"pPr"`
	Items []textItemXML `xml:",any"`
}

type pPrXML struct {
	Lvl       int       `xml:"lvl,attr"`
	BuChar    *struct{} `xml:"buChar"`
	BuAutoNum *struct{} `xml:"buAutoNum"`
	BuBlip    *struct{} `xml:"buBlip"`
}

// textItemXML is one of r, br, fld or endParaRPr.
type textItemXML struct {
	XMLName xml.Name
	RPr     *rPrXML `xml:"rPr"`
	T       string  `xml:"t"`
}

type rPrXML struct {
	Sz int `xml:"sz,attr"` // hundredths of a point
}

type picXML struct {
	NvPicPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvPicPr"`
}

type cxnSpXML struct {
	NvCxnSpPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvCxnSpPr"`
}

type grpSpXML struct {
	NvGrpSpPr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvGrpSpPr"`
}

// graphicFrameXML holds tables, charts, diagrams and embedded objects.
type graphicFrameXML struct {
	NvGraphicFramePr struct {
		CNvPr cNvPrXML `xml:"cNvPr"`
	} `xml:"nvGraphicFramePr"`
	Graphic struct {
		GraphicData graphicDataXML `xml:"graphicData"`
	} `xml:"graphic"`
}

type graphicDataXML struct {
	URI string  `xml:"uri,attr"`
	Tbl *tblXML `xml:"tbl"`
}

type tblXML struct {
	Tr []trXML `xml:"tr"`
}

type trXML struct {
	Tc []tcXML `xml:"tc"`
}

type tcXML struct {
	TxBody *txBodyXML `xml:"txBody"`
}
