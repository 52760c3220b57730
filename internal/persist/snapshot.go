package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"glass-oak/internal/ecs"
	"glass-oak/internal/gamemap"
	"glass-oak/internal/session"
)

// Version is bumped whenever the snapshot layout changes incompatibly.
const Version = 1

type snapshot struct {
	Version  int           `json:"version"`
	Entities []*ecs.Entity `json:"entities"`
	Game     gameState     `json:"game"`
}

type gameState struct {
	Map       *gamemap.GameMap  `json:"map"`
	Log       []session.Message `json:"log"`
	Inventory []*ecs.Entity     `json:"inventory"`
	Depth     uint              `json:"depth"`
	RunID     string            `json:"run_id"`
	Turn      int               `json:"turn"`
}

// Encode renders the world and session as a snapshot document.
func Encode(w *ecs.World, s *session.Session) ([]byte, error) {
	doc := snapshot{
		Version:  Version,
		Entities: w.Entities(),
		Game: gameState{
			Map:       s.Map,
			Log:       s.Log.Messages(),
			Inventory: s.Inventory,
			Depth:     s.Depth,
			RunID:     s.RunID,
			Turn:      s.Turn,
		},
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Decode parses and validates a snapshot document.
func Decode(data []byte) (*ecs.World, *session.Session, error) {
	var doc snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if doc.Version != Version {
		return nil, nil, fmt.Errorf("snapshot version %d, want %d", doc.Version, Version)
	}
	w, err := ecs.FromEntities(doc.Entities)
	if err != nil {
		return nil, nil, err
	}

	s := &session.Session{
		Map:       doc.Game.Map,
		Log:       session.NewLog(doc.Game.Log...),
		Inventory: doc.Game.Inventory,
		Depth:     doc.Game.Depth,
		RunID:     doc.Game.RunID,
		Turn:      doc.Game.Turn,
	}
	if s.Map == nil || !s.Map.Valid() {
		return nil, nil, fmt.Errorf("map dimensions do not match its tiles")
	}
	for i, it := range s.Inventory {
		if it == nil || it.Item == nil {
			return nil, nil, fmt.Errorf("inventory slot %d holds no item", i)
		}
	}
	if len(s.Inventory) > session.InventoryCapacity {
		return nil, nil, fmt.Errorf("inventory holds %d items", len(s.Inventory))
	}
	return w, s, nil
}

// Save encodes the game and writes it to slot. Errors are returned as is;
// losing a save must not go unnoticed.
func Save(ctx context.Context, store Store, slot string, w *ecs.World, s *session.Session) error {
	data, err := Encode(w, s)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, slot, data); err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// Load reads and decodes slot. Every failure is reported as ErrNoSave
// wrapping the cause.
func Load(ctx context.Context, store Store, slot string) (*ecs.World, *session.Session, error) {
	data, err := store.Load(ctx, slot)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNoSave, err)
	}
	w, s, err := Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNoSave, err)
	}
	return w, s, nil
}
