package fasta

import (
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>seq1
ACGU
>seq2
NNnn
`

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestParse_RoundTrip(t *testing.T) {
	in := ">id1 desc\nACGUAC\n  GGACU \n\n>id2 desc\nUUUU\nAAAA\n"
	recs, err := Parse(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	want := []struct{ id, hdr, payload string }{
		{"id1", ">id1 desc", "ACGUACGGACU"},
		{"id2", ">id2 desc", "UUUUAAAA"},
	}
	for i, w := range want {
		r := recs[i]
		if r.ID != w.id || r.Header != w.hdr || string(r.Payload) != w.payload {
			t.Errorf("record %d = {%q %q %q}, want {%q %q %q}", i, r.ID, r.Header, r.Payload, w.id, w.hdr, w.payload)
		}
	}
}

func TestParse_HeaderlessPrefixDropped(t *testing.T) {
	recs, err := Parse(context.Background(), strings.NewReader("ACGU\nGGAC\n>s1\nAAAC\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "s1" || string(recs[0].Payload) != "AAAC" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestParse_HeaderIDs(t *testing.T) {
	recs, err := Parse(context.Background(), strings.NewReader(">only\nA\n>\nC\n>tab\tsep\nG\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ids := []string{recs[0].ID, recs[1].ID, recs[2].ID}
	if ids[0] != "only" || ids[1] != "" || ids[2] != "tab" {
		t.Fatalf("ids = %q", ids)
	}
}

func TestParse_UppercasesAndKeepsEmptyRecords(t *testing.T) {
	recs, err := Parse(context.Background(), strings.NewReader(">a\n>b\nacgu\r\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 2 || recs[0].Len() != 0 || string(recs[1].Payload) != "ACGU" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestParseFile_Gzip(t *testing.T) {
	recs, err := ParseFile(context.Background(), writeGz(t, plain))
	if err != nil {
		t.Fatalf("parse gz: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "seq1" || recs[1].ID != "seq2" {
		t.Fatalf("gzip parse failed, recs=%+v", recs)
	}
	if string(recs[1].Payload) != "NNNN" {
		t.Fatalf("payload not upper-cased: %q", recs[1].Payload)
	}
}

func TestParseFile_Missing(t *testing.T) {
	if _, err := ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseFile_Stdin(t *testing.T) {
	// Fake stdin by swapping os.Stdin
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()

	recs, err := ParseFile(context.Background(), "-")
	if err != nil {
		t.Fatalf("parse stdin: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(recs))
	}
}
