package util_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tobyv/fanbookctl/internal/util"
)

func TestSafeName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Plain", "Plain"},
		{"With Spaces Here", "With_Spaces_Here"},
		{"slash/in/name", "slash-in-name"},
		{"back\\slash", "back-slash"},
		{"Mixed Case / Spaced", "Mixed_Case_-_Spaced"},
		{"", ""},
	}
	for _, c := range cases {
		if got := util.SafeName(c.in); got != c.want {
			t.Errorf("SafeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMD5Reader(t *testing.T) {
	got, err := util.MD5Reader(strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("MD5Reader: %v", err)
	}
	if got != "5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("MD5Reader = %q", got)
	}
}

func TestMD5File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("hello"), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := util.MD5File(path)
	if err != nil {
		t.Fatalf("MD5File: %v", err)
	}
	if got != "5d41402abc4b2a76b9719d911017c592" {
		t.Errorf("MD5File = %q", got)
	}
}

func TestMD5File_Missing(t *testing.T) {
	if _, err := util.MD5File(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := util.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		t.Errorf("dir not created: %v", err)
	}
	// Idempotent.
	if err := util.EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir: %v", err)
	}
}
