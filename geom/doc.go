// Package geom provides the small set of geometric primitives used by the
// spatial queries in this module.
//
// All coordinates are in the page coordinate frame of the source document:
// the origin is the top-left corner of the page and Y grows downward.
//
//   - [Point] - 2D point with Euclidean distance and translation
//   - [Rect] - axis-aligned rectangle spanned by two opposite corners
package geom
