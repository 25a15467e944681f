// Package pipeline runs records through scan, flank extraction and optional
// whole-record masking, then hands each Result to a visit callback.
//
// Records are processed one at a time in input order. Nothing is shared
// between records except the Masker's random source.
package pipeline
