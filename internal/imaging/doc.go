// Package imaging is the file and presentation layer of the MCP server: it
// loads and caches image files, reports their metadata, and renders the
// overlay and enhancement output the document tools return.
//
// The detection math itself lives elsewhere; this package only moves pixels
// between disk, tool output, and the scan pipeline's in-memory form.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0, 0) at the top-left corner,
// X increasing rightward and Y increasing downward.
//
// # Supported Formats
//
// Loading handles PNG, JPEG, GIF, BMP, TIFF, and WebP. JPEG files carrying
// an EXIF orientation tag are rotated upright on load, so phone photos
// arrive the way the camera saw them. Rendered output is always PNG.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining operations are
// stateless and may run concurrently on different images.
//
// # Tool Output
//
// Operations that produce an image return a RenderResult holding the pixels
// as base64 PNG next to the dimensions, ready to marshal into a JSON-RPC
// response without further processing.
package imaging
