// internal/storage/storage.go
package storage

import "errors"

// ErrSlotNotFound is returned when a named slot does not exist in the
// namespace. Distinct from the namespace itself being unreachable.
var ErrSlotNotFound = errors.New("slot not found")

// Namespace is the shared storage a campaign store operates on: a flat
// collection of named byte blobs ("slots"), one serialized record per slot.
// Implementations must not hold the namespace open across calls.
type Namespace interface {
    List() ([]string, error)
    Read(name string) ([]byte, error)
    Write(name string, data []byte) error
    Delete(name string) error
}
