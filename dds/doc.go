/*
Package dds implements the DDS raster codec: byte-exact parsing of the
DirectDraw Surface header, format detection for the common FourCC and
mask layouts, and full decode of the largest texture level into an
in-memory raster via BCn block decompression.

Both plain DDS payloads and the Enfusion (EDDS) container variant are
read; EDDS stores a block table after the header with per-mip bodies
that may be LZ4 chunk-stream compressed against a rolling 64KB
dictionary. The encode path writes either layout.
*/
package dds
