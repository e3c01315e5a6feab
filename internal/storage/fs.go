// internal/storage/fs.go
package storage

import (
    "errors"
    "fmt"
    "io/fs"
    "os"
    "path/filepath"
    "strings"
)

// FSNamespace stores each slot as a JSON file inside Dir.
type FSNamespace struct {
    Dir string
}

func (n *FSNamespace) List() ([]string, error) {
    entries, err := os.ReadDir(n.Dir)
    if err != nil {
        return nil, err
    }

    names := []string{}
    for _, e := range entries {
        if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
            continue
        }
        names = append(names, e.Name())
    }
    return names, nil
}

func (n *FSNamespace) Read(name string) ([]byte, error) {
    path, err := n.slotPath(name)
    if err != nil {
        return nil, err
    }
    data, err := os.ReadFile(path)
    if err != nil {
        if errors.Is(err, fs.ErrNotExist) {
            return nil, ErrSlotNotFound
        }
        return nil, err
    }
    return data, nil
}

// Write replaces the slot's content. The bytes land in a temp file first and
// are renamed into place, so a concurrent reader sees either the old or the
// new content, never a half-written file.
func (n *FSNamespace) Write(name string, data []byte) error {
    path, err := n.slotPath(name)
    if err != nil {
        return err
    }

    tmp, err := os.CreateTemp(n.Dir, ".slot-*")
    if err != nil {
        return err
    }
    if _, err := tmp.Write(data); err != nil {
        tmp.Close()
        os.Remove(tmp.Name())
        return err
    }
    if err := tmp.Close(); err != nil {
        os.Remove(tmp.Name())
        return err
    }
    return os.Rename(tmp.Name(), path)
}

func (n *FSNamespace) Delete(name string) error {
    path, err := n.slotPath(name)
    if err != nil {
        return err
    }
    if err := os.Remove(path); err != nil {
        if errors.Is(err, fs.ErrNotExist) {
            return ErrSlotNotFound
        }
        return err
    }
    return nil
}

func (n *FSNamespace) slotPath(name string) (string, error) {
    // Slot names are flat; anything path-like is rejected.
    if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
        return "", fmt.Errorf("invalid slot name %q", name)
    }
    return filepath.Join(n.Dir, name), nil
}

var _ Namespace = (*FSNamespace)(nil)
