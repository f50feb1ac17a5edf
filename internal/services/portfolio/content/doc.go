// Package content loads and validates the portfolio's authored content.
//
// Content lives in a site.yaml document plus one Markdown file per project
// under projects/. Load turns a file tree into an immutable Portfolio
// snapshot; stores hand snapshots to request handlers.
package content
