package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- doctor command tests ---

func TestDoctorCmd_Help(t *testing.T) {
	cmd := newRootCmd()
	buf := new(strings.Builder)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"doctor", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("doctor --help failed: %v", err)
	}
	if !strings.Contains(buf.String(), "diagnostic checks") {
		t.Errorf("expected help to mention 'diagnostic checks', got: %s", buf.String())
	}
}

func TestCheckBinary_Missing(t *testing.T) {
	result := checkBinary("nonexistent-binary-xyz-12345")
	if result.status != "FAIL" {
		t.Errorf("expected FAIL for missing binary, got %s: %s", result.status, result.detail)
	}
	if !strings.Contains(result.detail, "not found") {
		t.Errorf("expected detail to contain 'not found', got: %s", result.detail)
	}
}

func TestCheckConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ini")
	bad := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(good, []byte(abConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("[x]\nfoo = bar\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path       string
		wantStatus string
		wantDetail string
	}{
		{good, "PASS", "2 service(s): a, b"},
		{bad, "FAIL", "incantation"},
		{filepath.Join(dir, "new", "config.ini"), "WARN", "no services configured"},
	}
	for _, tt := range tests {
		r := checkConfig(tt.path)
		if r.status != tt.wantStatus {
			t.Errorf("checkConfig(%s) status = %s, want %s (%s)", tt.path, r.status, tt.wantStatus, r.detail)
		}
		if !strings.Contains(r.detail, tt.wantDetail) {
			t.Errorf("checkConfig(%s) detail = %q, want %q", tt.path, r.detail, tt.wantDetail)
		}
	}
}

func TestCheckSession(t *testing.T) {
	tm := newFakeTmux()
	if r := checkSession(tm, "dmux"); r.status != "WARN" {
		t.Errorf("absent session status = %s, want WARN", r.status)
	}
	tm.sessions["dmux"] = nil
	if r := checkSession(tm, "dmux"); r.status != "PASS" {
		t.Errorf("running session status = %s, want PASS", r.status)
	}
	if len(tm.calls) != 0 {
		t.Errorf("doctor mutated tmux: %v", tm.calls)
	}
}
