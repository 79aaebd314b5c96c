// Package post2txt converts saved forum thread pages into plain-text
// transcripts. It locates the post permalink and the post bodies with
// queries, renders each body to visible text with paragraph breaks, and
// writes the result as one text file per page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., htmlquery/, goquery/, yaml/).
package post2txt
