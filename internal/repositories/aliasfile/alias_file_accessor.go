package aliasfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AntonioJCosta/dosalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/dosalias/internal/core/ports"
	"pkt.systems/pslog"
)

const backupTimeLayout = "20060102150405"

// AliasFileAccessor reads and writes a DOSKEY alias file on the local file system.
type AliasFileAccessor struct {
	path      string
	backupDir string
	log       pslog.Logger
}

// NewAliasFileAccessor creates an accessor for the alias file at path.
// Backups go to backupDir, or next to the alias file when backupDir is empty.
func NewAliasFileAccessor(path, backupDir string, logger pslog.Logger) (ports.AliasFileAccessor, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("alias file path is required")
	}
	if logger != nil {
		logger = logger.With("alias_file", path)
	}
	return &AliasFileAccessor{path: path, backupDir: backupDir, log: logger}, nil
}

// Path implements the ports.AliasFileAccessor interface.
func (a *AliasFileAccessor) Path() string {
	return a.path
}

// Load implements the ports.AliasFileAccessor interface.
func (a *AliasFileAccessor) Load() (*alias.Collection, error) {
	file, err := os.Open(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			if a.log != nil {
				a.log.Debug("alias file missing, starting empty")
			}
			return alias.NewCollection(), nil
		}
		return nil, fmt.Errorf("%w: failed to open alias file %s: %v", alias.ErrIOFailure, a.path, err)
	}
	defer file.Close()

	aliases, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", alias.ErrIOFailure, err)
	}
	if a.log != nil {
		a.log.Debug("alias file loaded", "aliases", aliases.Len())
	}
	return aliases, nil
}

// Save implements the ports.AliasFileAccessor interface.
func (a *AliasFileAccessor) Save(aliases *alias.Collection) error {
	var buf bytes.Buffer
	if err := Encode(&buf, aliases); err != nil {
		return err
	}
	if err := writeFileAtomic(a.path, buf.Bytes()); err != nil {
		if a.log != nil {
			a.log.Warn("alias file save failed", "err", err)
		}
		return fmt.Errorf("%w: failed to save alias file %s: %v", alias.ErrIOFailure, a.path, err)
	}
	if a.log != nil {
		a.log.Debug("alias file saved", "aliases", aliases.Len())
	}
	return nil
}

// EnsureExists implements the ports.AliasFileAccessor interface.
func (a *AliasFileAccessor) EnsureExists() error {
	if _, err := os.Stat(a.path); err == nil {
		if a.log != nil {
			a.log.Debug("alias file already present")
		}
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("%w: failed to stat alias file %s: %v", alias.ErrIOFailure, a.path, err)
	}
	if a.log != nil {
		a.log.Info("alias file not found, creating it")
	}
	return a.Save(alias.NewCollection())
}

// Backup implements the ports.AliasFileAccessor interface.
func (a *AliasFileAccessor) Backup(now time.Time) (string, error) {
	dir := a.backupDir
	if dir == "" {
		dir = filepath.Dir(a.path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create backup directory %s: %v", alias.ErrIOFailure, dir, err)
	}
	backupPath := filepath.Join(dir, backupFileName(now))
	if err := copyFile(a.path, backupPath); err != nil {
		return "", fmt.Errorf("%w: failed to back up alias file: %v", alias.ErrIOFailure, err)
	}
	if a.log != nil {
		a.log.Debug("alias file backed up", "backup", backupPath)
	}
	return backupPath, nil
}

func backupFileName(now time.Time) string {
	return "alias_backup_" + now.Format(backupTimeLayout) + ".cmd"
}

// writeFileAtomic replaces path with data via a temp file in the same directory.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".alias-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
