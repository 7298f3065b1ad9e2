package xl

// Part is one named file inside the package.
type Part struct {
	Path    string // relative to the package root, e.g. "xl/workbook.xml"
	Content []byte
}

// Package part paths.
const (
	PathContentTypes  = "[Content_Types].xml"
	PathPackageRels   = "_rels/.rels"
	PathAppProps      = "docProps/app.xml"
	PathCoreProps     = "docProps/core.xml"
	PathWorkbook      = "xl/workbook.xml"
	PathWorkbookRels  = "xl/_rels/workbook.xml.rels"
	PathStyles        = "xl/styles.xml"
	PathTheme         = "xl/theme/theme1.xml"
	PathSharedStrings = "xl/sharedStrings.xml"
)

// SheetPath returns the part path of the n-th (1-based) worksheet.
func SheetPath(n int) string {
	return "xl/" + sheetTarget(n)
}
