package util

import (
	"path/filepath"
	"testing"
)

func TestDataDirPrefersXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	got := DataDir("nusui")
	want := filepath.Join("/tmp/xdg-data", "nusui")
	if got != want {
		t.Fatalf("DataDir = %q, want %q", got, want)
	}
}

func TestDocumentsDirPrefersXDG(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "/tmp/docs")
	if got := DocumentsDir(); got != "/tmp/docs" {
		t.Fatalf("DocumentsDir = %q, want /tmp/docs", got)
	}
}

func TestReportsDirUppercasesApp(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "/tmp/docs")
	if got := ReportsDir("nusui"); got != filepath.Join("/tmp/docs", "NUSUI") {
		t.Fatalf("ReportsDir = %q", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := "# comment\nXDG_DOWNLOAD_DIR=\"$HOME/Downloads\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n"
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("parseUserDir = %q, want $HOME/Docs", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("parseUserDir for missing key = %q, want empty", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 10, 20); got != 10 {
		t.Errorf("Clamp below = %d, want 10", got)
	}
	if got := Clamp(25, 10, 20); got != 20 {
		t.Errorf("Clamp above = %d, want 20", got)
	}
	if got := Clamp(15, 10, 20); got != 15 {
		t.Errorf("Clamp inside = %d, want 15", got)
	}
	if got := ClampFloat(-10.5, -10, 20); got != -10 {
		t.Errorf("ClampFloat below = %v, want -10", got)
	}
}
