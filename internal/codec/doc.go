// Package codec serialises records as UTF-8 JSON with exact binary
// round-tripping.
//
// Byte payloads are written using the Buffer marker convention
// ({"type":"Buffer","data":[...]}) so arbitrary byte sequences survive the
// textual format unchanged. The package also provides the atomic file write
// used by every persisted record.
package codec
