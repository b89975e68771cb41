// Package simpleportfolio provides a reusable library for managing the
// content of a single-page portfolio site: an introduction singleton, a
// gallery of content items, an other-info singleton (contact, social links,
// skills) and admin-defined custom sections with inline items.
//
// It exposes a single Service interface that validates input, applies the
// defaulting and merge rules of each entity family, and orchestrates media
// uploads through pluggable blob storage backends. The repository
// implementation (memory) and blob stores (memory, filesystem, S3) are
// provided under subpackages.
//
// Singletons are merged on write; collections are keyed by server-assigned
// ids. Content items list newest-first, custom sections list by the numeric
// value of their text Order field, ascending. These orderings are part of the
// contract, not presentation details.
package simpleportfolio
