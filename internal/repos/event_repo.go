package repos

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type EventRepo struct{ db *sqlx.DB }

func NewEventRepo(db *sqlx.DB) *EventRepo { return &EventRepo{db: db} }

// Insert appends one audit-trail entry. Runs inside the same transaction as
// the primary row insert.
func (r *EventRepo) Insert(x sqlx.Ext, eventType, entityID, payload string) error {
	q := x.Rebind(`
	  INSERT INTO events (id, event_type, entity_id, payload)
	  VALUES (?, ?, ?, ?)
	`)
	_, err := x.Exec(q, uuid.NewString(), eventType, entityID, payload)
	return err
}

// CountByType feeds the status page.
func (r *EventRepo) CountByType() (map[string]int64, error) {
	rows := []struct {
		EventType string `db:"event_type"`
		N         int64  `db:"n"`
	}{}
	if err := r.db.Select(&rows, `SELECT event_type, COUNT(*) AS n FROM events GROUP BY event_type`); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.EventType] = row.N
	}
	return out, nil
}
