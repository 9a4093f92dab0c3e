// Package templates embeds the HTML of the landing page.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
