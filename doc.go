// Package brainmem is a key-value façade over two storage namespaces: a durable
// one and a session-scoped one. Values are serialized transparently and keys
// may address into nested records with dot paths.
//
// Components:
//   - Provider: enumerable byte store backing one namespace (memory, BigCache,
//     Ristretto, Redis, SQLite).
//   - Codec: (de)serializes record trees <-> []byte (JSON by default).
//   - Host: holds the durable and session providers and opens façades on them.
//
// Keys:
//
//	<prefix>-<key>        - physical key when the façade has a prefix
//	settings.theme.color  - path key: head "settings", segments [theme color]
//
// Path writes:
//
//	mem.Record(ctx, "r.c", 7)    // replaces the whole record at r with {"c": 7}
//	mem.Update(ctx, "r.b", 9)    // loads r, sets b, keeps every sibling
//
// Defaults:
//
//	v, _ := mem.RecallOne(ctx, "theme", brainmem.Default("dark"), brainmem.PersistDefault())
//
// The façade keeps no state besides its prefix, so several façades (or other
// processes) can share a provider. Path writes are read-modify-write and are
// not atomic: concurrent updates to different fields of one record can lose
// each other's changes.
package brainmem
