package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyFirstLaunch = "first_launch"
	saveSlotPrefix = "save:"
)

// BoardTheme names the color scheme used to render the board. The
// engine itself is theme-agnostic; this is purely a saved preference
// a host UI can read back.
type BoardTheme int

const (
	ThemeClassic BoardTheme = iota
	ThemeWalnut
	ThemeSlate
)

// Preferences stores the handful of settings a host surface persists
// across launches. It deliberately does not encode anything about
// rules engine behavior: SoundEnabled/HighlightLegalMoves/BoardTheme
// are display concerns read by the interface layer, not the engine.
type Preferences struct {
	SoundEnabled        bool       `json:"sound_enabled"`
	HighlightLegalMoves bool       `json:"highlight_legal_moves"`
	BoardTheme          BoardTheme `json:"board_theme"`
	LastPlayed          time.Time  `json:"last_played"`
}

// DefaultPreferences returns the preferences a fresh install starts with.
func DefaultPreferences() *Preferences {
	return &Preferences{
		SoundEnabled:        true,
		HighlightLegalMoves: true,
		BoardTheme:          ThemeClassic,
		LastPlayed:          time.Now(),
	}
}

// SaveSlot is one saved game: a FEN snapshot of the current position
// plus the UCI move history needed to replay it move by move (and so
// rebuild undo/redo stacks and repetition history on load).
type SaveSlot struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	History []string  `json:"history"` // moves in UCI form, oldest first
	SavedAt time.Time `json:"saved_at"`
}

// Storage wraps BadgerDB for persistent storage of save slots and
// preferences.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if necessary) the application's database
// in its platform-specific data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch.
func (s *Storage) IsFirstLaunch() (bool, error) {
	var firstLaunch = true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if none
// have been saved yet.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

func saveSlotKey(name string) []byte {
	return []byte(saveSlotPrefix + name)
}

// SaveGame writes a save slot under name, overwriting any existing
// slot with the same name.
func (s *Storage) SaveGame(name, fen string, history []string) error {
	slot := SaveSlot{
		Name:    name,
		FEN:     fen,
		History: history,
		SavedAt: time.Now(),
	}

	data, err := json.Marshal(slot)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(saveSlotKey(name), data)
	})
}

// LoadGame reads back the save slot stored under name.
func (s *Storage) LoadGame(name string) (*SaveSlot, error) {
	var slot SaveSlot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(saveSlotKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("storage: no save slot named %q", name)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &slot)
		})
	})
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

// DeleteGame removes the save slot stored under name.
func (s *Storage) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(saveSlotKey(name))
	})
}

// ListGames returns the names of every saved slot, most recently
// saved first.
func (s *Storage) ListGames() ([]string, error) {
	var slots []SaveSlot

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(saveSlotPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var slot SaveSlot
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &slot)
			}); err != nil {
				return err
			}
			slots = append(slots, slot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].SavedAt.After(slots[j].SavedAt)
	})

	names := make([]string, len(slots))
	for i, slot := range slots {
		names[i] = slot.Name
	}
	return names, nil
}
