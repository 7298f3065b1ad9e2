package xl

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/adnsv/srw/xml"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

const (
	nsMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"

	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctSharedStrings = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// assembler generates the part tree of one workbook. The shared string table
// must already cover every sheet.
type assembler struct {
	sst          *SharedStrings
	workbookRels relSet

	DefaultContentTypes map[string]string // maps path extension to content-type
	PartContentTypes    map[string]string // maps path partname to content-type
}

func newAssembler(sst *SharedStrings) *assembler {
	a := &assembler{
		sst:                 sst,
		DefaultContentTypes: map[string]string{},
		PartContentTypes:    map[string]string{},
	}

	a.DefaultContentTypes["xml"] = "application/xml"
	a.DefaultContentTypes["rels"] = "application/vnd.openxmlformats-package.relationships+xml"

	return a
}

func sheetTarget(n int) string {
	return fmt.Sprintf("worksheets/sheet%d.xml", n)
}

func assemble(sheets []*Sheet, sst *SharedStrings) ([]Part, error) {
	a := newAssembler(sst)

	sheetRIDs := make([]string, len(sheets))
	sheetParts := make([]Part, len(sheets))
	for i, sh := range sheets {
		target := sheetTarget(i + 1)
		sheetRIDs[i] = a.workbookRels.add(relTypeWorksheet, target)

		blob, err := a.sheetXML(sh, i == 0)
		if err != nil {
			return nil, err
		}
		sheetParts[i] = a.part("xl/"+target, ctWorksheet, blob)
	}
	a.workbookRels.add(relTypeTheme, "theme/theme1.xml")
	a.workbookRels.add(relTypeStyles, "styles.xml")
	a.workbookRels.add(relTypeSharedStrings, "sharedStrings.xml")

	parts := []Part{
		{Path: PathPackageRels, Content: tmplPackageRels},
		a.part(PathAppProps, ctAppProps, tmplAppProps),
		a.part(PathCoreProps, ctCoreProps, tmplCoreProps),
		a.part(PathWorkbook, ctWorkbook, a.workbookXML(sheets, sheetRIDs)),
		{Path: PathWorkbookRels, Content: a.relsXML(a.workbookRels.rels)},
		a.part(PathStyles, ctStyles, tmplStyles),
		a.part(PathTheme, ctTheme, tmplTheme),
		a.part(PathSharedStrings, ctSharedStrings, a.sharedStringsXML()),
	}
	parts = append(parts, sheetParts...)

	// content types enumerate every part registered above
	parts = slices.Insert(parts, 0, Part{Path: PathContentTypes, Content: a.contentTypesXML()})

	return parts, nil
}

func (a *assembler) part(path, ctype string, blob []byte) Part {
	a.PartContentTypes["/"+path] = ctype
	return Part{Path: path, Content: blob}
}

func (a *assembler) contentTypesXML() []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})

	x.XmlStandaloneDecl()
	x.OTag("Types")
	x.Attr("xmlns", nsContentTypes)
	enumerate(a.DefaultContentTypes, func(ext, ctype string) error {
		x.OTag("+Default").Attr("Extension", ext).Attr("ContentType", ctype).CTag()
		return nil
	})
	enumerate(a.PartContentTypes, func(abspath, ctype string) error {
		x.OTag("+Override").Attr("PartName", abspath).Attr("ContentType", ctype).CTag()
		return nil
	})

	x.CTag()

	return bb.Bytes()
}

func (a *assembler) workbookXML(sheets []*Sheet, rids []string) []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("workbook")
	x.Attr("xmlns", nsMain)
	x.Attr("xmlns:r", nsRelationships)

	x.OTag("+fileVersion").Attr("appName", "xl").CTag()
	x.OTag("+workbookPr").CTag()

	x.OTag("+bookViews")
	{
		x.OTag("+workbookView")
		x.Attr("xWindow", 0)
		x.Attr("yWindow", 0)
		x.Attr("windowWidth", 28040)
		x.Attr("windowHeight", 17440)
		x.CTag()
	}
	x.CTag()

	x.OTag("+sheets")
	for i, sheet := range sheets {
		x.OTag("+sheet")
		x.Attr("name", sheet.Name)
		x.Attr("sheetId", i+1)
		x.Attr("r:id", rids[i])
		x.CTag()
	}
	x.CTag()

	x.OTag("+calcPr").Attr("calcId", 181029).CTag()

	x.CTag()

	return bb.Bytes()
}

func (a *assembler) sheetXML(sh *Sheet, selected bool) ([]byte, error) {
	bounds := Bounds(sh)

	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("worksheet")
	x.Attr("xmlns", nsMain)
	x.Attr("xmlns:r", nsRelationships)

	x.OTag("+dimension").Attr("ref", bounds.Ref()).CTag()

	x.OTag("+sheetViews")
	{
		x.OTag("+sheetView")
		if selected {
			x.Attr("tabSelected", 1)
		}
		x.Attr("workbookViewId", 0)
		x.OTag("+selection").Attr("activeCell", bounds.TopLeft).Attr("sqref", bounds.TopLeft).CTag()
		x.CTag()
	}
	x.CTag()

	x.OTag("+sheetFormatPr").Attr("defaultRowHeight", 16).CTag()

	x.OTag("+sheetData")
	if !bounds.Empty() {
		for ri, row := range sh.Rows {
			if len(row.Cells) == 0 {
				continue
			}
			x.OTag("+row").Attr("r", ri+1).Attr("spans", fmt.Sprintf("1:%d", len(row.Cells)))

			for ci, cell := range row.Cells {
				ref := CellName(ci, ri)
				x.OTag("+c").Attr("r", ref)

				switch cell.kind {
				case KindNumber:
					if cell.v != "" {
						x.OTag("v").RawString(escapeText(cell.v)).CTag()
					}
				case KindSharedString:
					i, ok := a.sst.Index(cell.v)
					if !ok {
						return nil, fmt.Errorf("sheet '%s' cell %s: %w", sh.Name, ref, ErrMissingSharedString)
					}
					x.Attr("t", "s")
					x.OTag("v").Write(i).CTag()
				default:
					return nil, fmt.Errorf("sheet '%s' cell %s: unsupported cell kind %v", sh.Name, ref, cell.kind)
				}
				x.CTag() // c
			}

			x.CTag() // row
		}
	}
	x.CTag() // sheetData

	x.OTag("+pageMargins")
	x.Attr("left", "0.7")
	x.Attr("right", "0.7")
	x.Attr("top", "0.75")
	x.Attr("bottom", "0.75")
	x.Attr("header", "0.3")
	x.Attr("footer", "0.3")
	x.CTag()

	x.CTag() // worksheet

	return bb.Bytes(), nil
}

func (a *assembler) sharedStringsXML() []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("sst")
	x.Attr("xmlns", nsMain)
	x.Attr("count", a.sst.Count())
	x.Attr("uniqueCount", a.sst.UniqueCount())

	for _, s := range a.sst.Values() {
		x.OTag("+si")
		x.OTag("t")
		if needsSpacePreserve(s) {
			x.Attr("xml:space", "preserve")
		}
		x.RawString(escapeText(s))
		x.CTag() // t
		x.CTag() // si
	}

	x.CTag()

	return bb.Bytes()
}

func needsSpacePreserve(s string) bool {
	return s != strings.TrimSpace(s)
}

func (a *assembler) relsXML(rels []RelInfo) []byte {
	bb := bytes.Buffer{}
	x := xml.NewWriter(&bb, xml.WriterConfig{Indent: xml.Indent2Spaces})
	x.XmlStandaloneDecl()

	x.OTag("Relationships")
	x.Attr("xmlns", nsPackageRels)
	for _, info := range rels {
		x.OTag("+Relationship").Attr("Id", info.ID).Attr("Type", info.Type).Attr("Target", info.Target)
		x.CTag()
	}
	x.CTag()

	return bb.Bytes()
}

func enumerate[M ~map[K]V, K constraints.Ordered, V any](m M, callback func(k K, v V) error) error {
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		err := callback(k, m[k])
		if err != nil {
			return err
		}
	}
	return nil
}
