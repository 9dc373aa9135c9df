// Package model contains the strongly-typed domain entities reconstructed
// from raw store documents, plus the create/update request structs the
// repositories encode from. Entities are pure data: no store dependencies,
// no business logic.
//
// Timestamps (CreatedAt/UpdatedAt) are stored and kept as ISO-8601 strings;
// they are document-native values, and the fixed-width layout makes
// lexicographic order match chronological order.
package model
