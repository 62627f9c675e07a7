// Package render turns scanned PDF pages into images ready for OCR.
//
// Scanned census volumes embed each page as a single raster image, so
// "rendering" is extraction of those embedded images rather than
// rasterization of vector content. Extracted pages are preprocessed for
// recognition accuracy: grayscale conversion and a mild upscale.
package render
