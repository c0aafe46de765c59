package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDrag(t *testing.T) {
	cases := []struct {
		input   string
		sel     Selection
		y       float64
		wantErr bool
	}{
		{"1:1:100", Selection{1, 1}, 100, false},
		{"0:4:-12.5", Selection{0, 4}, -12.5, false},
		{"1:1", Selection{}, 0, true},
		{"a:1:3", Selection{}, 0, true},
		{"1:b:3", Selection{}, 0, true},
		{"1:1:c", Selection{}, 0, true},
		{"", Selection{}, 0, true},
	}
	for _, c := range cases {
		sel, y, err := parseDrag(c.input)
		if (err != nil) != c.wantErr {
			t.Errorf("parseDrag(%q) err = %v, wantErr %v", c.input, err, c.wantErr)
			continue
		}
		if !c.wantErr && (sel != c.sel || y != c.y) {
			t.Errorf("parseDrag(%q) = %+v %v, want %+v %v", c.input, sel, y, c.sel, c.y)
		}
	}
}

// isolateHome keeps the commands away from the real rc file and log directory.
func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportCommandSVG(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "wave.svg")

	out, err := runCmd(t, "export", "--lines", "3", "--points", "3",
		"--width", "200", "--height", "100", "--drag", "1:1:100", "-o", path)
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("output = %q, want the file path", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `<svg width="200" height="100" xmlns="http://www.w3.org/2000/svg">` +
		`<path d="M 0 50 Q 100 80 200 50" stroke="black" fill="none"/>` +
		`<path d="M 0 50 Q 100 100 200 50" stroke="black" fill="none"/>` +
		`<path d="M 0 50 Q 100 120 200 50" stroke="black" fill="none"/>` +
		`</svg>`
	if string(data) != want {
		t.Errorf("document =\n%s\nwant\n%s", data, want)
	}

	if _, err := os.Stat(filepath.Join(os.Getenv("XDG_STATE_HOME"), "parallines", "parallines.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestExportCommandPNG(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "lines.png")
	if out, err := runCmd(t, "export", "--format", "png", "--width", "120", "--height", "60", "-o", path); err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestExportCommandErrors(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	cases := [][]string{
		{"export", "--points", "1", "-o", filepath.Join(dir, "a.svg")},
		{"export", "--drag", "9:0:10", "--lines", "3", "-o", filepath.Join(dir, "b.svg")},
		{"export", "--drag", "nonsense", "-o", filepath.Join(dir, "c.svg")},
		{"export", "--format", "gif", "-o", filepath.Join(dir, "d.gif")},
	}
	for _, args := range cases {
		if _, err := runCmd(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestExportCommandUsesRCFile(t *testing.T) {
	isolateHome(t)
	rc := "lines = 2\npoints = 2\n"
	if err := os.WriteFile(filepath.Join(os.Getenv("HOME"), ".parallinesrc"), []byte(rc), 0o600); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "rc.svg")
	if out, err := runCmd(t, "export", "--width", "10", "--height", "10", "-o", path); err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	data, _ := os.ReadFile(path)
	if got := strings.Count(string(data), "<path "); got != 2 {
		t.Errorf("paths = %d, want 2 from the rc file", got)
	}
}
