// Package docstore is an embeddable in-memory document repository with
// upsert, point lookup by identifier, and multi-criteria search.
//
// Search combines independent, optional criteria (title prefixes, content
// substrings, author identifiers, creation-time bounds) with union
// semantics: a document matching any one active criterion value is included
// in the result, deduplicated by identifier. The two creation-time bounds
// are independent criteria like the rest; they are not intersected into a
// range.
//
// The store keeps everything in process memory: nothing is persisted and
// all documents are lost when the owning process exits. An HTTP host
// application around this package lives in cmd/docstore.
package docstore
