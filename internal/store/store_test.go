package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestMemoryStore_Create(t *testing.T) {
	s := NewMemoryStore()
	id, err := s.Create("alice")
	testutil.AssertNoError(t, err)

	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Create() id %q is not a uuid: %v", id, err)
	}
	testutil.AssertEqual(t, s.Len(), 1)

	err = s.View(id, func(e Entry) error {
		testutil.AssertEqual(t, e.Game.ID(), id)
		testutil.AssertEqual(t, e.White, "alice")
		testutil.AssertEqual(t, e.Black, "")
		testutil.AssertEqual(t, e.Game.Status(), chess.Ongoing)
		return nil
	})
	testutil.AssertNoError(t, err)
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore()
	noop := func(*Entry) error { return nil }

	testutil.AssertErrorIs(t, s.Update("nope", noop), errors.ErrGameNotFound)
	testutil.AssertErrorIs(t, s.View("nope", func(Entry) error { return nil }), errors.ErrGameNotFound)
	s.Delete("nope")
}

func TestMemoryStore_Capacity(t *testing.T) {
	s := NewMemoryStore(WithMaxGames(2))
	for i := 0; i < 2; i++ {
		if _, err := s.Create("p"); err != nil {
			t.Fatalf("Create() #%d error: %v", i, err)
		}
	}
	testutil.AssertTrue(t, s.IsFull())

	_, err := s.Create("p")
	testutil.AssertErrorIs(t, err, errors.ErrStoreFull)
	testutil.AssertEqual(t, s.Len(), 2)
}

func TestMemoryStore_DuplicateID(t *testing.T) {
	s := NewMemoryStore(WithIDFunc(func() string { return "fixed" }))
	_, err := s.Create("p")
	testutil.AssertNoError(t, err)

	_, err = s.Create("q")
	testutil.AssertErrorIs(t, err, errors.ErrStoreFull)
}

func TestMemoryStore_UpdateAndDelete(t *testing.T) {
	s := NewMemoryStore()
	id, _ := s.Create("alice")

	err := s.Update(id, func(e *Entry) error {
		e.Black = "bob"
		e.DrawOffer = chess.White
		return e.Game.Move(chess.MustParsePosition("E2"), chess.MustParsePosition("E4"))
	})
	testutil.AssertNoError(t, err)

	_ = s.View(id, func(e Entry) error {
		testutil.AssertEqual(t, e.Black, "bob")
		testutil.AssertEqual(t, e.DrawOffer, chess.White)
		testutil.AssertEqual(t, e.Game.Turn(), chess.Black)
		return nil
	})

	s.Delete(id)
	testutil.AssertEqual(t, s.Len(), 0)
	testutil.AssertFalse(t, s.IsFull())
}

func TestEntry_ColorOf(t *testing.T) {
	e := Entry{White: "alice"}
	tests := []struct {
		player string
		want   chess.Color
		ok     bool
	}{
		{"alice", chess.White, true},
		{"bob", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.player), func(t *testing.T) {
			got, ok := e.ColorOf(tt.player)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ColorOf(%q) = %v, %v; want %v, %v", tt.player, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// TestMemoryStore_ConcurrentUpdates checks that updates on one game are
// serialized. Run with -race.
func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	s := NewMemoryStore()
	id, _ := s.Create("alice")
	other, _ := s.Create("carol")

	const workers = 8
	var wg sync.WaitGroup
	counts := make(map[string]int)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := id
			if i%2 == 0 {
				target = other
			}
			for j := 0; j < 100; j++ {
				_ = s.Update(target, func(e *Entry) error {
					e.Black = fmt.Sprintf("w%d", i)
					_ = e.Game.LegalMoves()
					return nil
				})
			}
		}(i)
	}
	wg.Wait()

	for _, gid := range []string{id, other} {
		_ = s.View(gid, func(e Entry) error {
			counts[gid] = len(e.Game.LegalMoves())
			return nil
		})
	}
	testutil.AssertEqual(t, counts, map[string]int{id: 20, other: 20})
}
