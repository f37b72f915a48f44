// Package srs is the query façade of the spatial reasoning system. A
// System owns a region store, answers two-object qualitative queries
// between stored regions, and reports insertions and removals to an
// optional canvas.
//
// Typical use:
//
//	sys := srs.New()
//	_ = sys.InsertCircle(0, 0, 10, 1, 0, 1, "room")
//	_ = sys.InsertCircle(1, 1, 1, 1, 0, 2, "chair")
//	inside, _ := sys.TwoObjectQuery(srs.RCC_PP, 1, 2) // 1: chair is a proper part of room
//
// A System is not safe for concurrent use.
package srs
