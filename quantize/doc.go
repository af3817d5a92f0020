// Package quantize maps fixed-channel vector streams (typically pixels) onto
// a small k-means palette for lossy compression.
//
// The package is colorspace- and format-agnostic: a pixel is just a
// C-dimensional point, supplied flattened in original order. Decoding image
// files and re-encoding the reconstructed stream belong to the caller.
//
//	q, _ := quantize.New(16, 3, clustergo.WithSeed(1))
//	img, _ := q.Quantize(ctx, pixels)
//	compressed := img.Reconstruct() // original pixel order, 16 distinct colors
package quantize
