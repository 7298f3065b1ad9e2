package xl

import "fmt"

// Relationship types used by the generated parts.
const (
	relTypeWorksheet     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	relTypeTheme         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	relTypeStyles        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeSharedStrings = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
)

type RelInfo struct {
	ID     string
	Type   string // url to schema type
	Target string // relative path
}

// relSet allocates contiguous relationship ids. It is the only place where
// ids are numbered; callers keep the returned id for their own references.
type relSet struct {
	lastID int
	rels   []RelInfo
}

func (rs *relSet) add(typ, target string) string {
	rs.lastID++
	rid := fmt.Sprintf("rId%d", rs.lastID)
	rs.rels = append(rs.rels, RelInfo{ID: rid, Type: typ, Target: target})
	return rid
}
