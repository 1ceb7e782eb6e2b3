package aliasfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/AntonioJCosta/dosalias/internal/core/domain/alias"
)

// manageTestFile creates a file at the given path for the test.
func manageTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

func newTestAccessor(t *testing.T, path, backupDir string) *AliasFileAccessor {
	t.Helper()
	accessor, err := NewAliasFileAccessor(path, backupDir, nil)
	if err != nil {
		t.Fatalf("NewAliasFileAccessor() unexpected error: %v", err)
	}
	afa, ok := accessor.(*AliasFileAccessor)
	if !ok {
		t.Fatalf("NewAliasFileAccessor() did not return a *AliasFileAccessor, got %T", accessor)
	}
	return afa
}

func TestNewAliasFileAccessor(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "path set", path: filepath.Join(t.TempDir(), "alias.cmd"), wantErr: false},
		{name: "empty path", path: "", wantErr: true},
		{name: "blank path", path: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessor, err := NewAliasFileAccessor(tt.path, "", nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewAliasFileAccessor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && accessor.Path() != tt.path {
				t.Errorf("Path() = %q, want %q", accessor.Path(), tt.path)
			}
		})
	}
}

func TestAliasFileAccessor_Load(t *testing.T) {
	t.Run("missing file yields empty collection", func(t *testing.T) {
		a := newTestAccessor(t, filepath.Join(t.TempDir(), "nope", "alias.cmd"), "")
		got, err := a.Load()
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if got.Len() != 0 {
			t.Errorf("Load() returned %d aliases, want 0", got.Len())
		}
	})

	t.Run("existing file is decoded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alias.cmd")
		manageTestFile(t, path, []byte("@echo off\r\nDOSKEY ll=dir $T cls\r\nDOSKEY g=git $*\r\n"))
		a := newTestAccessor(t, path, "")

		got, err := a.Load()
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		want := []alias.Alias{
			{Name: "ll", Commands: []string{"dir", "cls"}},
			{Name: "g", Commands: []string{"git $*"}},
		}
		if !reflect.DeepEqual(got.All(), want) {
			t.Errorf("Load() = %#v, want %#v", got.All(), want)
		}
	})

	t.Run("directory in place of file is an io failure", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alias.cmd")
		if err := os.MkdirAll(path, 0755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		a := newTestAccessor(t, path, "")
		_, err := a.Load()
		if !errors.Is(err, alias.ErrIOFailure) {
			t.Errorf("Load() error = %v, want ErrIOFailure", err)
		}
	})
}

func TestAliasFileAccessor_Save(t *testing.T) {
	t.Run("writes full file and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sub", "alias.cmd")
		manageTestFile(t, path, []byte("DOSKEY old=stale\r\n"))
		a := newTestAccessor(t, path, "")

		coll := alias.NewCollection()
		if err := coll.Add("a", []string{"x"}); err != nil {
			t.Fatal(err)
		}
		if err := coll.Add("b", []string{"y", "z"}); err != nil {
			t.Fatal(err)
		}
		if err := a.Save(coll); err != nil {
			t.Fatalf("Save() unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		content := string(data)
		if strings.Contains(content, "old=stale") {
			t.Errorf("Save() kept stale content:\n%s", content)
		}
		if !strings.HasPrefix(content, "@echo off\r\n") {
			t.Errorf("Save() content does not start with header:\n%s", content)
		}
		if !strings.HasSuffix(content, "DOSKEY a=x\r\nDOSKEY b=y $T z\r\n") {
			t.Errorf("Save() content does not end with alias lines:\n%s", content)
		}

		entries, err := os.ReadDir(filepath.Dir(path))
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		if len(entries) != 1 {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("Save() left extra files: %v", names)
		}
	})

	t.Run("contract violation writes nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alias.cmd")
		manageTestFile(t, path, []byte("DOSKEY keep=me\r\n"))
		a := newTestAccessor(t, path, "")

		coll := alias.NewCollection()
		coll.Put("broken", []string{})
		err := a.Save(coll)
		if !errors.Is(err, alias.ErrEmptyCommands) {
			t.Fatalf("Save() error = %v, want ErrEmptyCommands", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "DOSKEY keep=me\r\n" {
			t.Errorf("Save() modified file on rejected input: %q", data)
		}
	})

	t.Run("unwritable target is an io failure", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		manageTestFile(t, blocker, []byte("not a dir"))
		a := newTestAccessor(t, filepath.Join(blocker, "alias.cmd"), "")

		err := a.Save(alias.NewCollection())
		if !errors.Is(err, alias.ErrIOFailure) {
			t.Errorf("Save() error = %v, want ErrIOFailure", err)
		}
	})
}

func TestAliasFileAccessor_EnsureExists(t *testing.T) {
	t.Run("creates header-only file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app", "alias.cmd")
		a := newTestAccessor(t, path, "")
		if err := a.EnsureExists(); err != nil {
			t.Fatalf("EnsureExists() unexpected error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		want := strings.Join(header, "\r\n") + "\r\n"
		if string(data) != want {
			t.Errorf("EnsureExists() content = %q, want %q", data, want)
		}
	})

	t.Run("leaves existing file untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "alias.cmd")
		manageTestFile(t, path, []byte("custom\nDOSKEY a=b\n"))
		a := newTestAccessor(t, path, "")
		if err := a.EnsureExists(); err != nil {
			t.Fatalf("EnsureExists() unexpected error: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "custom\nDOSKEY a=b\n" {
			t.Errorf("EnsureExists() rewrote existing file: %q", data)
		}
	})
}

func TestAliasFileAccessor_Backup(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		name      string
		backupDir func(base string) string
		wantDir   func(base string) string
	}{
		{
			name:      "next to alias file by default",
			backupDir: func(string) string { return "" },
			wantDir:   func(base string) string { return base },
		},
		{
			name:      "configured backup directory",
			backupDir: func(base string) string { return filepath.Join(base, "backups") },
			wantDir:   func(base string) string { return filepath.Join(base, "backups") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			path := filepath.Join(base, "alias.cmd")
			content := []byte("DOSKEY a=b\r\n")
			manageTestFile(t, path, content)
			a := newTestAccessor(t, path, tt.backupDir(base))

			got, err := a.Backup(now)
			if err != nil {
				t.Fatalf("Backup() unexpected error: %v", err)
			}
			want := filepath.Join(tt.wantDir(base), "alias_backup_20240309140507.cmd")
			if got != want {
				t.Errorf("Backup() path = %q, want %q", got, want)
			}
			data, err := os.ReadFile(got)
			if err != nil {
				t.Fatalf("ReadFile backup: %v", err)
			}
			if string(data) != string(content) {
				t.Errorf("Backup() content = %q, want %q", data, content)
			}
		})
	}

	t.Run("missing source is an io failure", func(t *testing.T) {
		a := newTestAccessor(t, filepath.Join(t.TempDir(), "alias.cmd"), "")
		_, err := a.Backup(now)
		if !errors.Is(err, alias.ErrIOFailure) {
			t.Errorf("Backup() error = %v, want ErrIOFailure", err)
		}
	})
}
