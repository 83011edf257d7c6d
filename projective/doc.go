// Package projective warps raster images with a four-point projective
// (keystone) transform.
//
// A transform is described by eight coefficients c0..c7:
//
//	x' = (c0*x + c1*y + c2) / (c6*x + c7*y + 1)
//	y' = (c3*x + c4*y + c5) / (c6*x + c7*y + 1)
//
// The transformers walk the destination raster and use the coefficients to
// find each pixel's source location, so the map passed to them goes from
// destination to source. The point-driven entry points take the destination
// points first and solve that backwards map themselves.
//
// Two reconstructions are provided. Sampled copies the nearest source pixel
// and works at every depth, keeping any colormap. Transform blends the four
// neighbouring source pixels; it removes colormaps, promotes low depths to
// 8 bpp gray and hands 1 bpp images to Sampled.
//
// Pixels whose source location falls outside the image take the border
// color. All functions are synchronous and never modify their inputs.
package projective
