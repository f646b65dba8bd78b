// Package regions finds table-like regions in rasterized page images.
//
// # Detectors
//
// Region detection is performed by types implementing the [Detector]
// interface. The package provides:
//
//   - [LayoutDetector] - binarizes the page and looks for large rectangular
//     outlines
//
// # Layout Detection
//
// The [LayoutDetector] uses a multi-step algorithm:
//
//  1. Adaptive binarization of the inverted page luminance
//  2. Connected-component labeling of the resulting mask
//  3. Geometric filtering (minimum size, maximum page coverage,
//     rectangularity of the component outline)
//  4. Suppression of regions nested inside a larger component
//
// Detected regions are returned as [image.Rectangle] values relative to the
// top-left corner of the page image, ordered top to bottom.
//
// # Configuration
//
// Detection behavior is controlled by [Config]:
//
//	config := regions.DefaultConfig()
//	config.MinWidth = 400
//	detector := regions.NewLayoutDetector(config)
//
// The defaults are tuned for 300 DPI renderings of A4/Letter documents.
//
// [Annotate] draws detected regions onto a copy of the page image for
// visual inspection.
package regions
