// Package region defines the Region model: a caller-identified circle or
// polygon with an intrinsic facing. Regions are immutable values; moving a
// region means removing it and inserting a replacement.
package region
