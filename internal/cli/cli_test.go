package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// keep tests independent of a config file in the working directory
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.yml")}, args...)

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chvt.c")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck_Output(t *testing.T) {
	path := writeSource(t, "int x=1;\nif(x){\n")
	out, err := execute(t, "check", "--color", "never", path)
	if err != nil {
		t.Fatal(err)
	}

	want := "style: glued assignment/comparison operator (2) at line 1 in \"" + path + "\"\n" +
		"style: glued \"if\" at line 2 in \"" + path + "\"\n" +
		"style: glued left brace at line 2 in \"" + path + "\"\n"
	if out != want {
		t.Errorf("output =\n%s\nwant\n%s", out, want)
	}
}

func TestCheck_CleanFileNoOutput(t *testing.T) {
	path := writeSource(t, "/* Clean. */\nint x = 1;\n")
	out, err := execute(t, "check", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
}

func TestCheck_FindingsDoNotFailByDefault(t *testing.T) {
	path := writeSource(t, "int x=1;\n")
	if _, err := execute(t, "check", path); err != nil {
		t.Errorf("err = %v, want nil without strict mode", err)
	}
}

func TestCheck_Strict(t *testing.T) {
	path := writeSource(t, "int x=1;\n")
	_, err := execute(t, "check", "--strict", path)
	var fErr *FindingsError
	if !errors.As(err, &fErr) {
		t.Fatalf("err = %v, want *FindingsError", err)
	}
	if fErr.Count != 1 {
		t.Errorf("Count = %d, want 1", fErr.Count)
	}
}

func TestCheck_StrictFromConfig(t *testing.T) {
	path := writeSource(t, "int x=1;\n")
	cfgPath := filepath.Join(t.TempDir(), "stylecheck.yml")
	if err := os.WriteFile(cfgPath, []byte("strict: true\ncolor: never\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "check", path})
	err := cmd.Execute()
	var fErr *FindingsError
	if !errors.As(err, &fErr) {
		t.Fatalf("err = %v, want *FindingsError", err)
	}
	if !strings.HasPrefix(out.String(), "style: ") {
		t.Errorf("output = %q, want uncolored diagnostics", out.String())
	}
}

func TestCheck_WrongArgCount(t *testing.T) {
	for _, args := range [][]string{{"check"}, {"check", "a.c", "b.c"}} {
		out, err := execute(t, args...)
		var uErr *UsageError
		if !errors.As(err, &uErr) {
			t.Fatalf("args %v: err = %v, want *UsageError", args, err)
		}
		if !strings.Contains(uErr.Error(), "check <file>") {
			t.Errorf("usage = %q, want the check usage line", uErr.Error())
		}
		if out != "" {
			t.Errorf("args %v: output = %q, want none", args, out)
		}
	}
}

func TestCheck_MissingFile(t *testing.T) {
	out, err := execute(t, "check", filepath.Join(t.TempDir(), "missing.c"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}
	if out != "" {
		t.Errorf("output = %q, want none", out)
	}
}

func TestCheck_InvalidColor(t *testing.T) {
	path := writeSource(t, "int x;\n")
	if _, err := execute(t, "check", "--color", "rainbow", path); err == nil {
		t.Fatal("expected error for invalid color")
	}
}

func TestRoot_PositionalFile(t *testing.T) {
	path := writeSource(t, "int x=1;\nif(x){\n")
	viaCheck, err := execute(t, "check", "--color", "never", path)
	if err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--color", "never", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != viaCheck {
		t.Errorf("output =\n%s\nwant same as check\n%s", out, viaCheck)
	}
}

func TestRoot_Strict(t *testing.T) {
	path := writeSource(t, "int x=1;\n")
	_, err := execute(t, "--strict", path)
	var fErr *FindingsError
	if !errors.As(err, &fErr) {
		t.Fatalf("err = %v, want *FindingsError", err)
	}
}

func TestRoot_WrongArgCount(t *testing.T) {
	for _, args := range [][]string{{}, {"a.c", "b.c"}} {
		out, err := execute(t, args...)
		var uErr *UsageError
		if !errors.As(err, &uErr) {
			t.Fatalf("args %v: err = %v, want *UsageError", args, err)
		}
		if !strings.Contains(uErr.Error(), "stylecheck <file>") {
			t.Errorf("usage = %q, want the root usage line", uErr.Error())
		}
		if out != "" {
			t.Errorf("args %v: output = %q, want none", args, out)
		}
	}
}

func TestChecks_ListsCatalog(t *testing.T) {
	out, err := execute(t, "checks")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"operator-spacing", "glued logical operator (2)", "lower-case-comment"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "stylecheck dev") {
		t.Errorf("output = %q, want stylecheck dev prefix", out)
	}
}

func TestWatch_MissingFileFailsBeforeWatching(t *testing.T) {
	if _, err := execute(t, "watch", filepath.Join(t.TempDir(), "missing.c")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
