// Package manifest reads, patches, and validates a project's package.json.
//
// A manifest is handled as a key-ordered JSON object: member values are kept
// as raw JSON so only the members that are explicitly set change on write.
// Everything else, including key order, number formatting and nested
// structure, passes through untouched.
package manifest
