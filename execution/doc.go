// Package execution describes what the backend answers to an afm.Execution:
// a Response with dimension headers and a link to the result, and the Result
// pages fetched from that link.
//
// Headers and header items are key-discriminated unions, encoded the same
// way as the afm package encodes its unions.
package execution
