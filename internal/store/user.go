package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/lingualearn/internal/catalog"
	"github.com/abhisek/lingualearn/internal/progress"
)

// DefaultUserKey is the storage key of the single learner record.
const DefaultUserKey = "learner"

// UserRepo loads and saves whole user records by key.
type UserRepo interface {
	// Load returns the user stored under key, or nil if none exists.
	Load(ctx context.Context, key string) (*progress.User, error)

	// Save replaces the record stored under key with a full snapshot of u.
	Save(ctx context.Context, key string, u *progress.User) error

	// Delete removes the record stored under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Raw returns the stored record JSON, upgraded to RecordVersion, or nil.
	Raw(ctx context.Context, key string) ([]byte, error)

	// Import validates raw record JSON at the given version and stores it.
	Import(ctx context.Context, key string, raw []byte, version int) (*progress.User, error)
}

// userRepo implements UserRepo on the user_records table.
type userRepo struct {
	db *sql.DB
}

func (r *userRepo) Load(ctx context.Context, key string) (*progress.User, error) {
	raw, err := r.Raw(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}
	return decodeUser(key, raw)
}

func (r *userRepo) Raw(ctx context.Context, key string) ([]byte, error) {
	query, args := builder().
		Select("version", "data").
		From(entsql.Table(UserRecordsTable.Name)).
		Where(entsql.EQ("key", key)).
		Limit(1).
		Query()

	var (
		version int
		data    []byte
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user record: %w", err)
	}

	upgraded, err := upgradeRecord(data, version)
	if err != nil {
		return nil, &ErrInvalidRecord{Key: key, Err: err}
	}
	return upgraded, nil
}

func (r *userRepo) Save(ctx context.Context, key string, u *progress.User) error {
	if u == nil {
		return fmt.Errorf("save user record %q: nil user", key)
	}
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal user record: %w", err)
	}
	return r.put(ctx, key, data)
}

func (r *userRepo) Import(ctx context.Context, key string, raw []byte, version int) (*progress.User, error) {
	upgraded, err := upgradeRecord(raw, version)
	if err != nil {
		return nil, &ErrInvalidRecord{Key: key, Err: err}
	}
	u, err := decodeUser(key, upgraded)
	if err != nil {
		return nil, err
	}
	if err := r.Save(ctx, key, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) put(ctx context.Context, key string, data []byte) error {
	query, args := builder().
		Insert(UserRecordsTable.Name).
		Columns("key", "version", "data", "updated_at").
		Values(key, RecordVersion, data, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save user record: %w", err)
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, key string) error {
	query, args := builder().
		Delete(UserRecordsTable.Name).
		Where(entsql.EQ("key", key)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete user record: %w", err)
	}
	return nil
}

// decodeUser validates and unmarshals record JSON.
func decodeUser(key string, raw []byte) (*progress.User, error) {
	if err := validateRecord(raw); err != nil {
		return nil, &ErrInvalidRecord{Key: key, Err: err}
	}
	var u progress.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, &ErrInvalidRecord{Key: key, Err: fmt.Errorf("unmarshal: %w", err)}
	}
	if u.Progress == nil {
		u.Progress = make(map[catalog.Language]*progress.LanguageProgress)
	}
	return &u, nil
}
