// Package layout computes output geometry for canvas documents.
//
// # Normalization
//
// Canvas coordinates are unbounded and may be negative. [Normalize] finds
// the bounding box of all nodes and returns a [Transform]: a translation
// (DX, DY) that moves the top-left of the box to (padding, padding), and the
// output canvas size, which is the box extent plus padding on both sides.
//
//	t, err := layout.Normalize(doc.Nodes, layout.DefaultPadding)
//	box := t.Place(node) // node rectangle in output coordinates
//
// No scaling is ever applied.
//
// # Anchors
//
// [ResolveAnchor] turns "side S of node N" into a point on N's boundary:
//
//	top    → (x + w/2, y)
//	bottom → (x + w/2, y + h)
//	left   → (x, y + h/2)
//	right  → (x + w, y + h/2)
//	other  → (x + w/2, y + h/2)
//
// where (x, y) is the translated top-left corner. Resolution is
// translation-equivariant: shifting (dx, dy) shifts the result by the same
// amount.
//
// Normalization must complete before any anchor is resolved, since the
// translation depends on every node in the document.
package layout
