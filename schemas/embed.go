// Package schemas provides the embedded SQL table definitions.
package schemas

import _ "embed"

// SQLite creates the tables read by the database data source.
//
//go:embed sqlite.sql
var SQLite string
