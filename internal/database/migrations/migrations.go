// Package migrations embeds the SQL migration files applied at startup.
// Foreign keys are deliberately absent: reference resolution is advisory
// and handled with LEFT JOINs, so removing a user never blocks or cascades.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
