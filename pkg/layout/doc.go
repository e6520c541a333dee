// Package layout animates elements between layout positions using the
// FLIP technique: record the first rectangle, measure the last one, apply
// the inverse transform and play it back to identity.
//
// A [Group] shares rectangles between elements with the same layout id, so
// an element that unmounts in one place and mounts in another animates from
// its old position. A [Pipeline] batches measurement so every animator in a
// frame reads its new rectangle before any transform is applied.
package layout
