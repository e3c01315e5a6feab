// internal/storage/memory.go
package storage

import "sync"

// MemoryNamespace is an in-memory Namespace used by tests and by local
// setups that don't need durable storage.
type MemoryNamespace struct {
    mu    sync.Mutex
    slots map[string][]byte
}

func NewMemoryNamespace() *MemoryNamespace {
    return &MemoryNamespace{slots: make(map[string][]byte)}
}

func (n *MemoryNamespace) List() ([]string, error) {
    n.mu.Lock()
    defer n.mu.Unlock()

    names := make([]string, 0, len(n.slots))
    for name := range n.slots {
        names = append(names, name)
    }
    return names, nil
}

func (n *MemoryNamespace) Read(name string) ([]byte, error) {
    n.mu.Lock()
    defer n.mu.Unlock()

    data, ok := n.slots[name]
    if !ok {
        return nil, ErrSlotNotFound
    }
    out := make([]byte, len(data))
    copy(out, data)
    return out, nil
}

func (n *MemoryNamespace) Write(name string, data []byte) error {
    n.mu.Lock()
    defer n.mu.Unlock()

    stored := make([]byte, len(data))
    copy(stored, data)
    n.slots[name] = stored
    return nil
}

func (n *MemoryNamespace) Delete(name string) error {
    n.mu.Lock()
    defer n.mu.Unlock()

    if _, ok := n.slots[name]; !ok {
        return ErrSlotNotFound
    }
    delete(n.slots, name)
    return nil
}

var _ Namespace = (*MemoryNamespace)(nil)
