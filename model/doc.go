// Package model provides the in-memory records built from a page-collection
// XML document.
//
// A [Page] is either a physical page of the document or a virtual subpage
// (the left or right part of a physical page after a vertical split). Each
// page holds the [Text] boxes placed on it.
//
// # Coordinates
//
// Text coordinates are always absolute, in the frame of the physical page
// they came from: the origin is the top-left corner and Y grows downward.
// Subpages do not rewrite text coordinates; instead they carry an XOffset
// from which local coordinates can be derived:
//
//	localLeft := sub.LocalLeft(text) // text.Left - sub.XOffset
//
// # Source nodes
//
// Every Text keeps the [xmldoc.NodeID] of the element it was read from.
// [Text.UpdatePosition] uses it to write a new position back into the
// document, which is the only way a Text ever mutates after parsing.
package model
