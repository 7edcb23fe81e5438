// Package pixel implements the page-packed monochrome image used by
// SSD1xxx-style OLED displays.
//
// The image memory is organized in "pages": horizontal bands of 8 pixel
// rows, one byte per column, least significant bit on top. This matches
// the display RAM layout, so the pixel buffer can be sent to the
// controller verbatim. The types are compatible with Go's native
// [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel
