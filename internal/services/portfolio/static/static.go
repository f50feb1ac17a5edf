package static

import "embed"

// FS exposes the stylesheet and browser script served under /static/.
//
//go:embed *.css *.js
var FS embed.FS
