// Package web embeds the stylesheet and scripts served under /static/ and
// copied into static exports.
package web

import "embed"

//go:embed static
var Static embed.FS

// StaticRoot is the directory inside Static that holds the assets
const StaticRoot = "static"
