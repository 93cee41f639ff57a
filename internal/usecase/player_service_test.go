package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/user"
)

func TestPlayerService_CreateAppliesPriceFloor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.players.Create(ctx, testAdmin, CreatePlayerInput{Name: "Rookie", Team: "Nepal", Position: "Wicket-keeper", BasePrice: 20000})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if created.CurrentPrice != 50000 || created.BasePrice != 20000 || created.Position != player.PositionWicketKeeper {
		t.Fatalf("unexpected created player: %+v", created)
	}

	cases := []struct {
		name  string
		actor user.Principal
		input CreatePlayerInput
		want  error
	}{
		{"standard user", user.Principal{UserID: "u1"}, CreatePlayerInput{Name: "x", Team: "y", Position: "Bowler", BasePrice: 1}, ErrForbidden},
		{"bad position", testAdmin, CreatePlayerInput{Name: "x", Team: "y", Position: "Keeper", BasePrice: 1}, ErrInvalidInput},
		{"missing name", testAdmin, CreatePlayerInput{Team: "y", Position: "Bowler", BasePrice: 1}, ErrInvalidInput},
		{"zero price", testAdmin, CreatePlayerInput{Name: "x", Team: "y", Position: "Bowler"}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := env.players.Create(ctx, tc.actor, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPlayerService_ListFiltersByPosition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	all, err := env.players.List(ctx, "")
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	keepers, err := env.players.List(ctx, "wicket-keeper")
	if err != nil {
		t.Fatalf("list keepers: %v", err)
	}
	if len(all) != 15 || len(keepers) != 3 {
		t.Fatalf("unexpected counts: all=%d keepers=%d", len(all), len(keepers))
	}
	if _, err := env.players.List(ctx, "goalkeeper"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := env.players.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_DeleteRejectsHeldPlayer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.account(t, "u1")
	env.buy(t, "u1", "bat-kohli", false)

	if err := env.players.Delete(ctx, testAdmin, "bat-kohli"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := env.players.Delete(ctx, testAdmin, "bat-root"); err != nil {
		t.Fatalf("delete unheld player: %v", err)
	}
	if _, err := env.players.Get(ctx, "bat-root"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted player to be gone, got %v", err)
	}
	if err := env.players.Delete(ctx, testAdmin, "bat-root"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
