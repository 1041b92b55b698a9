package migrations

import "embed"

// FS embeds the schema of feed_items and ad_events. golang-migrate reads it
// through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version db.Migrate brings the database to.
const Version = 1
