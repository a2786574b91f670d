// Package artwork synthesizes the image half of a gallery artifact.
//
// For a seed, a fresh [stream.Stream] is built and consumed in a fixed
// order:
//
//  1. one draw in [0, 5] picks an entry of the aspect ratio catalog
//  2. for every pixel, row-major and left to right, three draws in
//     [0, 255] give red, green and blue
//
// Alpha is always 255 and consumes no draw. Changing any part of this order
// changes every pixel after the change for every seed, so it is fixed.
//
// The result is an [image.NRGBA] ready to be handed to an encoder; this
// package does no I/O.
package artwork
