package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lakaytv/lakaytv/internal/models"
)

// Postgres implements Store using PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a Postgres store from a DSN. Caller must call Close when done.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// wrapErr tags a storage failure so callers can tell it apart from a miss.
func wrapErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrUnavailable, err))
}

const channelColumns = "id, name, logo, stream, category, description, is_active, created_at"

func scanChannel(row pgx.Row) (*models.Channel, error) {
	var ch models.Channel
	err := row.Scan(&ch.ID, &ch.Name, &ch.Logo, &ch.Stream, &ch.Category,
		&ch.Description, &ch.IsActive, &ch.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// ListChannels returns channels matching the filter, capped at maxListResults.
// Substring matching uses strpos over lower-cased copies so the semantics are
// literal substring search, independent of any LIKE/regex dialect.
func (p *Postgres) ListChannels(ctx context.Context, filter ChannelFilter) ([]models.Channel, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 2)

	if filter.ActiveOnly {
		where = append(where, "is_active")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("strpos(lower(category), lower($%d)) > 0", len(args)))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		where = append(where, fmt.Sprintf("strpos(lower(name), lower($%d)) > 0", len(args)))
	}

	query := "SELECT " + channelColumns + " FROM channels"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// created_at,id keeps the order stable for a given store state.
	query += fmt.Sprintf(" ORDER BY created_at, id LIMIT %d", maxListResults)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("ListChannels", err)
	}
	defer rows.Close()

	var channels []models.Channel
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			return nil, wrapErr("ListChannels scan", err)
		}
		channels = append(channels, *ch)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListChannels rows", err)
	}
	return channels, nil
}

// CreateChannel inserts a new channel with a generated id and created_at.
func (p *Postgres) CreateChannel(ctx context.Context, in models.ChannelInput) (*models.Channel, error) {
	ch := models.Channel{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Logo:        in.Logo,
		Stream:      in.Stream,
		Category:    in.Category,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if ch.Category == "" {
		ch.Category = models.DefaultCategory
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO channels (id, name, logo, stream, category, description, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ch.ID, ch.Name, ch.Logo, ch.Stream, ch.Category, ch.Description, ch.IsActive, ch.CreatedAt,
	)
	if err != nil {
		return nil, wrapErr("CreateChannel", err)
	}
	return &ch, nil
}

// GetChannelByID returns a single channel by id.
func (p *Postgres) GetChannelByID(ctx context.Context, channelID string) (*models.Channel, error) {
	row := p.pool.QueryRow(ctx,
		"SELECT "+channelColumns+" FROM channels WHERE id = $1", channelID)
	ch, err := scanChannel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("GetChannelByID", err)
	}
	return ch, nil
}

// UpdateChannel applies the non-nil fields of upd in a single UPDATE and
// returns the row as it stands afterwards. The caller validates that the
// update is non-empty.
func (p *Postgres) UpdateChannel(ctx context.Context, channelID string, upd models.ChannelUpdate) (*models.Channel, error) {
	set := make([]string, 0, 6)
	args := []any{channelID}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Logo != nil {
		add("logo", *upd.Logo)
	}
	if upd.Stream != nil {
		add("stream", *upd.Stream)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("UpdateChannel: empty update")
	}

	query := fmt.Sprintf(
		"UPDATE channels SET %s WHERE id = $1 RETURNING %s",
		strings.Join(set, ", "), channelColumns)

	ch, err := scanChannel(p.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapErr("UpdateChannel", err)
	}
	return ch, nil
}

// DeleteChannel hard-removes a channel.
func (p *Postgres) DeleteChannel(ctx context.Context, channelID string) error {
	tag, err := p.pool.Exec(ctx, "DELETE FROM channels WHERE id = $1", channelID)
	if err != nil {
		return wrapErr("DeleteChannel", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CategoryCounts groups all channels by category, ascending by name.
// Inactive channels count too; only hard deletes remove a channel from the
// aggregation.
func (p *Postgres) CategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	rows, err := p.pool.Query(ctx,
		"SELECT category, COUNT(*) FROM channels GROUP BY category ORDER BY category")
	if err != nil {
		return nil, wrapErr("CategoryCounts", err)
	}
	defer rows.Close()

	var counts []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, wrapErr("CategoryCounts scan", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("CategoryCounts rows", err)
	}
	return counts, nil
}

// CountChannels returns the total number of channel records.
func (p *Postgres) CountChannels(ctx context.Context) (int, error) {
	var n int
	if err := p.pool.QueryRow(ctx, "SELECT COUNT(*) FROM channels").Scan(&n); err != nil {
		return 0, wrapErr("CountChannels", err)
	}
	return n, nil
}

// SeedChannels bulk-inserts channels, assigning each its own id/created_at.
func (p *Postgres) SeedChannels(ctx context.Context, in []models.ChannelInput) (int, error) {
	batch := &pgx.Batch{}
	now := time.Now().UTC()
	for _, c := range in {
		category := c.Category
		if category == "" {
			category = models.DefaultCategory
		}
		batch.Queue(
			`INSERT INTO channels (id, name, logo, stream, category, description, is_active, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, true, $7)`,
			uuid.NewString(), c.Name, c.Logo, c.Stream, category, c.Description, now,
		)
	}
	results := p.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range in {
		if _, err := results.Exec(); err != nil {
			return 0, wrapErr("SeedChannels", err)
		}
	}
	return len(in), nil
}

const favoritesColumns = "id, user_id, channel_ids, updated_at"

func scanFavorites(row pgx.Row) (*models.UserFavorites, error) {
	var f models.UserFavorites
	if err := row.Scan(&f.ID, &f.UserID, &f.ChannelIDs, &f.UpdatedAt); err != nil {
		return nil, err
	}
	if f.ChannelIDs == nil {
		f.ChannelIDs = []string{}
	}
	return &f, nil
}

// GetOrCreateFavorites returns the favorites record for userID, inserting an
// empty one first when none exists. The insert is an ON CONFLICT DO NOTHING
// so concurrent first reads cannot create duplicates.
func (p *Postgres) GetOrCreateFavorites(ctx context.Context, userID string) (*models.UserFavorites, error) {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO favorites (id, user_id) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO NOTHING`,
		uuid.NewString(), userID,
	)
	if err != nil {
		return nil, wrapErr("GetOrCreateFavorites insert", err)
	}
	f, err := scanFavorites(p.pool.QueryRow(ctx,
		"SELECT "+favoritesColumns+" FROM favorites WHERE user_id = $1", userID))
	if err != nil {
		return nil, wrapErr("GetOrCreateFavorites", err)
	}
	return f, nil
}

// ReplaceFavorites overwrites the full channel id list in one upsert.
// The input is stored as given; replace is a full overwrite, not a merge.
func (p *Postgres) ReplaceFavorites(ctx context.Context, userID string, channelIDs []string) (*models.UserFavorites, error) {
	if channelIDs == nil {
		channelIDs = []string{}
	}
	f, err := scanFavorites(p.pool.QueryRow(ctx,
		`INSERT INTO favorites (id, user_id, channel_ids, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   channel_ids = EXCLUDED.channel_ids, updated_at = now()
		 RETURNING `+favoritesColumns,
		uuid.NewString(), userID, channelIDs,
	))
	if err != nil {
		return nil, wrapErr("ReplaceFavorites", err)
	}
	return f, nil
}

// ToggleFavorite flips membership of channelID in a single upsert. The CASE
// over array_append/array_remove runs inside one atomic statement, so two
// concurrent toggles on the same user serialize at the row and neither is
// lost.
func (p *Postgres) ToggleFavorite(ctx context.Context, userID, channelID string) (*models.ToggleResult, error) {
	var added bool
	err := p.pool.QueryRow(ctx,
		`INSERT INTO favorites (id, user_id, channel_ids, updated_at)
		 VALUES ($1, $2, ARRAY[$3]::text[], now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   channel_ids = CASE WHEN $3 = ANY (favorites.channel_ids)
		                      THEN array_remove(favorites.channel_ids, $3)
		                      ELSE array_append(favorites.channel_ids, $3)
		                 END,
		   updated_at = now()
		 RETURNING $3 = ANY (channel_ids)`,
		uuid.NewString(), userID, channelID,
	).Scan(&added)
	if err != nil {
		return nil, wrapErr("ToggleFavorite", err)
	}
	res := &models.ToggleResult{ChannelID: channelID, Action: models.ToggleRemoved}
	if added {
		res.Action = models.ToggleAdded
	}
	return res, nil
}
