/*
Package rastercodec implements a pluggable raster codec framework.

Each format codec declares an immutable descriptor of MIME types and file
suffixes and implements a two-phase contract: a cheap probe that decides,
without fully decoding, whether a byte source matches the format, and an
expensive decode that produces complete in-memory rasters together with a
caller-supplied parameter bag enriched with derived facts (pixel format,
dimensions).

The Reader and Writer wrappers implement the shared validation and
dispatch skeleton once for every codec: argument checks, suffix
normalization and matching, the probe guard, and failure normalization.
Probe failures never propagate; they degrade to a no-match plus a debug
log entry. A Registry iterates registered codecs and hands work to the
first one that accepts.

Codec instances are stateless aside from their descriptors and are safe
for concurrent use. Parameter bags are caller-owned and mutated in place;
callers sharing one bag across goroutines must serialize access.
*/
package rastercodec
