package assets

import "embed"

//go:embed index.html graphs.js style.css
var FS embed.FS
