// Package pf reads, writes and builds .pf bitmap fonts.
//
// A .pf font carries glyphs for single-byte character codes as row-major
// 1-bit bitmaps, plus a designated default (fallback) character. On load
// every glyph is transcoded once into the page-packed column-major form
// used by SSD1xxx display RAM, so drawing text reduces to byte-wise OR
// blits (see the pixel package).
//
// The binary format is, in order: the magic bytes "PF", the default
// character code, the character count N, N 5-byte table entries (code,
// width, height, 16-bit little-endian bitmap offset) and the concatenated
// bitmap data the offsets point into. There is no version field; the
// format is not designed to evolve.
package pf
