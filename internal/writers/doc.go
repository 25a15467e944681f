// Package writers turns pipeline results into files on disk.
//
// Design:
//   - Formatters (internal/output) own the text layout; writers own paths,
//     file lifecycle and extension checks.
//   - One file per record, named after the record ID.
package writers
