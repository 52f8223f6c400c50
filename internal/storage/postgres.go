package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
)

// Schema 开奖历史表结构，由 db migrate 子命令执行
const Schema = `
CREATE TABLE IF NOT EXISTS draw_history (
	round_id      BIGINT PRIMARY KEY,
	completed_at  TIMESTAMPTZ NOT NULL,
	participants  INTEGER NOT NULL,
	total_weight  NUMERIC NOT NULL,
	prize_awarded NUMERIC NOT NULL,
	carry_over    NUMERIC NOT NULL,
	strategy      TEXT NOT NULL,
	notes         JSONB NOT NULL DEFAULT '[]',
	winners       JSONB NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_draw_history_completed_at ON draw_history (completed_at DESC);
`

// PostgresStore Postgres开奖历史存储实现
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore 创建Postgres存储实例
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate 创建开奖历史表
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return errors.Wrap(err, "failed to migrate draw history schema")
	}
	return nil
}

// SaveDraw 保存开奖记录。同一轮次重复保存时覆盖。
func (s *PostgresStore) SaveDraw(ctx context.Context, record *DrawRecord) error {
	notes, err := json.Marshal(record.Notes)
	if err != nil {
		return errors.Wrap(err, "failed to marshal notes")
	}
	winners, err := json.Marshal(record.Winners)
	if err != nil {
		return errors.Wrap(err, "failed to marshal winners")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO draw_history
			(round_id, completed_at, participants, total_weight, prize_awarded, carry_over, strategy, notes, winners)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (round_id) DO UPDATE SET
			completed_at  = EXCLUDED.completed_at,
			participants  = EXCLUDED.participants,
			total_weight  = EXCLUDED.total_weight,
			prize_awarded = EXCLUDED.prize_awarded,
			carry_over    = EXCLUDED.carry_over,
			strategy      = EXCLUDED.strategy,
			notes         = EXCLUDED.notes,
			winners       = EXCLUDED.winners`,
		record.RoundID, record.CompletedAt, record.Participants,
		record.TotalWeight, record.PrizeAwarded, record.CarryOver,
		record.Strategy, notes, winners)
	if err != nil {
		return errors.Wrap(err, "failed to save draw record")
	}

	return nil
}

// GetDraw 按轮次获取开奖记录
func (s *PostgresStore) GetDraw(ctx context.Context, roundID int64) (*DrawRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT round_id, completed_at, participants, total_weight, prize_awarded, carry_over, strategy, notes, winners
		FROM draw_history WHERE round_id = $1`, roundID)

	record, err := scanDraw(row)
	if err == sql.ErrNoRows {
		return nil, ErrDrawNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draw record")
	}

	return record, nil
}

// ListDraws 按完成时间倒序列出最近的开奖记录
func (s *PostgresStore) ListDraws(ctx context.Context, limit int) ([]*DrawRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT round_id, completed_at, participants, total_weight, prize_awarded, carry_over, strategy, notes, winners
		FROM draw_history ORDER BY completed_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list draw records")
	}
	defer rows.Close()

	var out []*DrawRecord
	for rows.Next() {
		record, err := scanDraw(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan draw record")
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate draw records")
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDraw(row rowScanner) (*DrawRecord, error) {
	var record DrawRecord
	var notes, winners []byte

	err := row.Scan(&record.RoundID, &record.CompletedAt, &record.Participants,
		&record.TotalWeight, &record.PrizeAwarded, &record.CarryOver,
		&record.Strategy, &notes, &winners)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(notes, &record.Notes); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal notes")
	}
	if err := json.Unmarshal(winners, &record.Winners); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal winners")
	}

	return &record, nil
}
