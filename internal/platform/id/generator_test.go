package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	g := NewUUIDGenerator()
	a, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}
	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("parse generated id: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected v7 uuid, got v%d", parsed.Version())
	}
}

func TestSequence_NewID(t *testing.T) {
	s := NewSequence("player")
	first, _ := s.NewID()
	second, _ := s.NewID()
	if first != "player-001" || second != "player-002" {
		t.Fatalf("unexpected sequence: %s %s", first, second)
	}
}
