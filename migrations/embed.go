// Package migrations embeds the goose SQL migrations so they can be applied
// programmatically by cmd/setup and the integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
