// Package render implements the drawing surfaces behind the ports
// interfaces: the append-only trail log, the per-frame marker layer, the
// pipeline that couples them with visibility toggles, and the SVG and
// terminal views that read the trail back out.
package render
