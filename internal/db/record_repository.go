package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/gen3pkm/internal/pokemon"
)

// StoredRecord is the listing view of a stored row.
type StoredRecord struct {
	ID          int64
	Personality uint32
	TrainerID   uint32
	Nickname    string
	Checksum    uint16
	CreatedAt   time.Time
}

// RecordRepository persists sealed party records.
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository creates a repository on pool.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

const insertRecord = `INSERT INTO records (personality, trainer_id, nickname, checksum, raw)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id`

func recordArgs(rec *pokemon.Record) ([]any, error) {
	raw, err := rec.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshalling record: %w", err)
	}
	// Unreadable names are still stored; the raw bytes are authoritative.
	nickname, _ := rec.NicknameString()
	return []any{int64(rec.Personality), int64(rec.TrainerID), nickname, int32(rec.Checksum), raw}, nil
}

// Save inserts rec and returns its id.
func (r *RecordRepository) Save(ctx context.Context, rec pokemon.Record) (int64, error) {
	args, err := recordArgs(&rec)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.pool.QueryRow(ctx, insertRecord, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("saving record %#08x: %w", rec.Personality, err)
	}
	slog.Debug("record saved", "id", id, "personality", fmt.Sprintf("%#08x", rec.Personality))
	return id, nil
}

// SaveBatch inserts recs in one transaction and returns their ids in order.
func (r *RecordRepository) SaveBatch(ctx context.Context, recs []pokemon.Record) ([]int64, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for i := range recs {
		args, err := recordArgs(&recs[i])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		batch.Queue(insertRecord, args...)
	}

	ids := make([]int64, len(recs))
	br := tx.SendBatch(ctx, batch)
	for i := range recs {
		if err := br.QueryRow().Scan(&ids[i]); err != nil {
			br.Close() //nolint:errcheck
			return nil, fmt.Errorf("save record batch at %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, fmt.Errorf("close record batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit record batch: %w", err)
	}
	slog.Info("records saved", "count", len(recs))
	return ids, nil
}

// LoadByID returns the record with the given id.
// Returns nil, nil if no such row exists. Rows whose data block fails the
// checksum are returned together with an error wrapping pokemon.ErrChecksumMismatch.
func (r *RecordRepository) LoadByID(ctx context.Context, id int64) (*pokemon.Record, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT raw FROM records WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying record %d: %w", id, err)
	}

	var rec pokemon.Record
	if err := rec.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("decoding record %d: %w", id, err)
	}
	if err := rec.Verify(); err != nil {
		return &rec, fmt.Errorf("record %d: %w", id, err)
	}
	return &rec, nil
}

// List returns up to limit stored records, newest first.
func (r *RecordRepository) List(ctx context.Context, limit int) ([]StoredRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, personality, trainer_id, nickname, checksum, created_at
		 FROM records ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var out []StoredRecord
	for rows.Next() {
		var (
			s           StoredRecord
			personality int64
			trainerID   int64
			checksum    int32
		)
		if err := rows.Scan(&s.ID, &personality, &trainerID, &s.Nickname, &checksum, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning record row: %w", err)
		}
		s.Personality = uint32(personality)
		s.TrainerID = uint32(trainerID)
		s.Checksum = uint16(checksum)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating record rows: %w", err)
	}
	return out, nil
}
