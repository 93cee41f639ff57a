package id

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues time-ordered v7 UUIDs so that ids sort by creation.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return v.String(), nil
}

// Sequence hands out prefixed, zero-padded ids; used for seeding and tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix, next: 1}
}

func (s *Sequence) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s-%03d", s.prefix, s.next)
	s.next++
	return id, nil
}
