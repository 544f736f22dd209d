// Package web carries the embedded static frontend: the upload page with
// its result panels, plus the informational pages.
package web

import "embed"

//go:embed static
var Static embed.FS
