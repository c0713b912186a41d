// Package content embeds the markdown catalog, setup steps, best
// practices, reference pages and scaffold templates served by the tools.
package content

import "embed"

// FS is rooted at this directory: patterns/, setup/, practices/,
// extras/ and scaffold/.
//
//go:embed patterns setup practices extras scaffold
var FS embed.FS
