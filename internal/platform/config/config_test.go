package config

import (
	"testing"
	"time"
)

func TestPrefixComposition(t *testing.T) {
	t.Setenv("CORE_API_PORT", "4600")

	cfg := New().Prefix("CORE_").Prefix("API_")
	if got := cfg.MustString("PORT"); got != "4600" {
		t.Fatalf("got %q", got)
	}
}

func TestMayHelpers(t *testing.T) {
	t.Setenv("T_STR", " hello ")
	t.Setenv("T_INT", "42")
	t.Setenv("T_BOOL", "false")
	t.Setenv("T_DUR", "250ms")
	t.Setenv("T_CSV", "a, b ,,c")
	t.Setenv("T_BAD_INT", "nope")

	cfg := New().Prefix("T_")
	if got := cfg.MayString("STR", "def"); got != "hello" {
		t.Fatalf("MayString = %q", got)
	}
	if got := cfg.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := cfg.MayInt("INT", 1); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := cfg.MayInt("BAD_INT", 7); got != 7 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := cfg.MayBool("BOOL", true); got {
		t.Fatalf("MayBool should be false")
	}
	if got := cfg.MayBool("MISSING", true); !got {
		t.Fatalf("MayBool default should be true")
	}
	if got := cfg.MayDuration("DUR", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	got := cfg.MayCSV("CSV", nil)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("MayCSV = %v", got)
	}
}
