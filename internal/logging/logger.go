package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type TurnLog struct {
	ID         int       `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	WorldState string    `json:"world_state"`
	UserInput  string    `json:"user_input"`
	Category   string    `json:"category"`
	Narrative  string    `json:"narrative"`
	Events     string    `json:"events"`
}

// TurnLogger records every completed turn to a local sqlite database so a
// session can be replayed or debugged after the fact.
type TurnLogger struct {
	db *sql.DB
}

func NewTurnLogger(path string) (*TurnLogger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger := &TurnLogger{db: db}
	if err := logger.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return logger, nil
}

func (tl *TurnLogger) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		world_state TEXT NOT NULL,
		user_input TEXT NOT NULL,
		category TEXT NOT NULL,
		narrative TEXT NOT NULL,
		events TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_turns_timestamp ON turns(timestamp);
	`

	_, err := tl.db.Exec(schema)
	return err
}

// LogTurn stores one turn: the world state after the turn, the raw input,
// the classified category, the narration shown to the player, and the
// labels of the events the turn produced.
func (tl *TurnLogger) LogTurn(
	worldState interface{},
	userInput string,
	category string,
	narrative string,
	eventLabels []string,
) error {
	worldStateJson, err := json.Marshal(worldState)
	if err != nil {
		return fmt.Errorf("failed to marshal world state: %w", err)
	}

	eventsJson, err := json.Marshal(eventLabels)
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	_, err = tl.db.Exec(`
		INSERT INTO turns (world_state, user_input, category, narrative, events)
		VALUES (?, ?, ?, ?, ?)
	`, string(worldStateJson), userInput, category, narrative, string(eventsJson))

	return err
}

func (tl *TurnLogger) Close() error {
	return tl.db.Close()
}
