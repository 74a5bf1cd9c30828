// Package docsearch provides an in-process search engine for small
// documentation sites. It holds a fixed corpus of page entries in
// memory, scores free-text queries with a weighted multi-field
// relevance function, extracts context-aware snippets with safe
// highlighting, and drives a keyboard-navigable result list.
//
// This package contains domain types, interfaces, and the pure search
// logic, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, trafilatura/, gemini/).
package docsearch
