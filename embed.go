// Package root embeds assets that live at the repository root, such as SQL
// migrations, so they can be shipped inside the binary.
package root

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations
var Migrations embed.FS
