package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	fs.BoolVar(&b, "bool", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"--bool", "pos1", "--", "pos2"})
	if len(flagArgs) != 1 || len(posArgs) != 2 || posArgs[0] != "pos1" || posArgs[1] != "pos2" {
		t.Fatalf("unexpected split: %v / %v", flagArgs, posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionals_PassThrough(t *testing.T) {
	got, err := ExpandPositionals([]string{"-", "s3://bucket/reads?.fa"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(got) != 2 || got[0] != "-" || got[1] != "s3://bucket/reads?.fa" {
		t.Fatalf("unexpected expansion: %v", got)
	}
}

func TestExpandPositionals_NoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatal("expected error for glob with no matches")
	}
}

func TestSplitFlagsAndPositionals_ValueFlags(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Int("w", 10, "")
	var q bool
	fs.BoolVar(&q, "q", false, "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{"in.fa", "-w", "4", "-q", "--w=6", "-"})
	if len(flagArgs) != 4 || flagArgs[1] != "4" {
		t.Fatalf("flags: %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "in.fa" || posArgs[1] != "-" {
		t.Fatalf("positionals: %v", posArgs)
	}
}
