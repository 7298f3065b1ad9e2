package xl

import (
	_ "embed"
)

// Static package parts, written verbatim.
var (
	//go:embed templates/rels.xml
	tmplPackageRels []byte

	//go:embed templates/app.xml
	tmplAppProps []byte

	//go:embed templates/core.xml
	tmplCoreProps []byte

	//go:embed templates/styles.xml
	tmplStyles []byte

	//go:embed templates/theme1.xml
	tmplTheme []byte
)
