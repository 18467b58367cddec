// Package steps defines the Step Stream: the ordered, replayable sequence of
// observable events produced by the search and sorting engines.
//
// What:
//
//   - Step is one event: a Kind tag plus the coordinate (visit, path), the
//     index pair (compare, swap), or the index and value (overwrite) it carries.
//   - Stream is an immutable, finite sequence of Steps. Replaying it any number
//     of times never alters it.
//   - Recorder is the append-only builder the engines write into.
//   - ReplayValues applies swap/overwrite steps to a copy of an array;
//     ReplayGrid marks visited/path cells on a clone of a grid.
//   - The wire format is canonical JSON (fixed field order per kind). Decode
//     validates incoming bytes against an embedded JSON Schema first. Hash is
//     the hex sha256 of the canonical bytes, so equal streams hash equally.
//   - Filter selects steps with a boolean expression such as
//     `kind == "swap" && i == 0`.
//
// Determinism:
//
//	Encoding depends only on step content and order: no timestamps, no map
//	iteration, no pointers. Two byte-identical streams have identical hashes.
//
// Errors:
//
//   - ErrIndexOutOfRange: a replayed step addresses an index outside [0, n).
//   - ErrKindMismatch: a grid step replayed onto an array, or vice versa.
//   - ErrUnknownKind: a kind tag that is not one of the five event kinds.
//   - ErrInvalidStream: bytes that fail schema validation.
//   - ErrBadFilter: an expression that does not compile to a boolean.
package steps
