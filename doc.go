// Package universe renders every possible black and white square image.
//
// An image of side s has s*s pixels, each black or white, so there are exactly
// 2^(s*s) of them. Reading the pixels row by row as binary digits turns each
// image into a single non-negative integer, its ordinal. This package goes the
// other way: given a side and an ordinal it paints the image.
//
// Using default values, side 100, there are 2^10000 images, an ordinal with up
// to 3011 decimal digits. Ordinals are always math/big integers.
//
// # Basic Usage
//
//	r, err := universe.New(nil) // side limit 1000
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	n, _ := new(big.Int).SetString("1", 10)
//	img, err := r.Render(2, n)
//	if err != nil {
//		// side or ordinal out of range
//	}
//	// img.Image is 2x2, bottom-right pixel white, others black.
//
// # Batches
//
// RenderBatch renders several ordinals of the same side in order and hands
// each image to a Sink. It stops at the first ordinal that fails validation,
// so with ordinals [0, 16] and side 2 (max 15) only the first image is produced:
//
//	files := &output.Files{Dir: "out", Format: output.PNG}
//	_, err := r.RenderBatch(2, ordinals, files) // writes out/output0.png
//	errors.Is(err, universe.ErrOrdinalOutOfRange) // true
//
// With no ordinals, RenderBatch samples one uniformly at random.
//
// # Bit Layout
//
// By default the binary digits of the ordinal are zero padded at the front and
// fill the grid row-major, so small ordinals are mostly black images with the
// pattern in the bottom rows. Opts.Padding and Opts.Order select the
// alternative layouts.
//
// # Errors
//
// Out of range input yields *SideError or *OrdinalError, which wrap
// ErrSideOutOfRange and ErrOrdinalOutOfRange. Large bounds are shown in
// scientific notation.
package universe
