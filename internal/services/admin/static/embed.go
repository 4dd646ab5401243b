// Package static embeds the admin panel's browser assets.
package static

import "embed"

// FS contains the stylesheet served under /static/.
//
//go:embed *.css
var FS embed.FS
