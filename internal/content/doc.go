// Package content turns platform directories of content folders into Items.
//
// A content folder is valid when it holds the title file; url, tags, and the
// downloadable archive are optional. Scanner walks each platform directory in
// folder-name order, and ValidateItems enforces per-platform id uniqueness
// before anything downstream consumes the list.
package content
