package apperr

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"nil", nil, ExitOK, "internal"},
		{"config", Config(base, "parse"), ExitUsage, "config"},
		{"input", Input(base, "read %s", "x.fa"), ExitUsage, "input"},
		{"output", Output(base, ""), ExitIO, "output"},
		{"canceled", errors.Wrap(context.Canceled, "run"), ExitCanceled, "canceled"},
		{"plain", base, ExitInternal, "internal"},
		{"wrapped output", errors.Wrap(Output(base, "write"), "record r1"), ExitIO, "output"},
	}
	for _, tc := range tests {
		if got := ExitCode(tc.err); got != tc.code {
			t.Errorf("%s: ExitCode = %d, want %d", tc.name, got, tc.code)
		}
		if tc.err != nil {
			if got := Kind(tc.err); got != tc.kind {
				t.Errorf("%s: Kind = %q, want %q", tc.name, got, tc.kind)
			}
		}
	}
}

func TestMarkKeepsMessage(t *testing.T) {
	err := Input(errors.New("no such file"), "read %q", "in.fa")
	if got := err.Error(); got != `read "in.fa": no such file` {
		t.Fatalf("message = %q", got)
	}
	if Input(nil, "x") != nil {
		t.Fatalf("nil must stay nil")
	}
}
