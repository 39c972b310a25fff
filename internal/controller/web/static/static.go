// Package static embeds the stylesheet and scripts served under /static/.
package static

import "embed"

//go:embed app.js style.css
var FS embed.FS
