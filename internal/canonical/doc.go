// Package canonical produces RFC 8785 canonical JSON and content
// fingerprints of AFM executions and embedding messages.
//
// Two documents that differ only in key order, insignificant whitespace,
// number spelling (1.0 vs 1) or Unicode normalization have the same canonical
// form and therefore the same fingerprint.
package canonical
