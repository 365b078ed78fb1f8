// Package appfs exposes the application's embedded assets: goose
// migrations (per engine) and the web view templates.
package appfs

import "embed"

//go:embed migrations templates
var FS embed.FS
