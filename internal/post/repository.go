package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists posts. Update and Delete are scoped to the owning user.
type Repository interface {
	Create(ctx context.Context, post Post) error
	Get(ctx context.Context, id string) (Post, error)
	ListByUser(ctx context.Context, userID string) ([]Post, error)
	ListAll(ctx context.Context) ([]Post, error)
	Update(ctx context.Context, id, userID, title, content string, updatedAt time.Time) error
	Delete(ctx context.Context, id, userID string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed post repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a post record.
func (r *PostgresRepository) Create(ctx context.Context, post Post) error {
	postID, err := uuid.Parse(post.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(post.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO posts (id, user_id, author_username, title, content, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		postID, userID, post.AuthorUsername, post.Title, post.Content, post.CreatedAt.UTC(), post.UpdatedAt.UTC())
	return err
}

// Get fetches a post by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return Post{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, user_id, author_username, title, content, created_at, updated_at
        FROM posts WHERE id = $1`, postID)
	return scanPost(row)
}

// ListByUser fetches posts owned by the given user, oldest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Post, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	rows, err := r.db.Query(ctx, `SELECT id, user_id, author_username, title, content, created_at, updated_at
        FROM posts WHERE user_id = $1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListAll fetches every post, oldest first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]Post, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, author_username, title, content, created_at, updated_at
        FROM posts ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

// Update rewrites title and content of a post owned by userID.
func (r *PostgresRepository) Update(ctx context.Context, id, userID, title, content string, updatedAt time.Time) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE posts SET title = $1, content = $2, updated_at = $3
        WHERE id = $4 AND user_id = $5`, title, content, updatedAt.UTC(), postID, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post owned by userID.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1 AND user_id = $2`, postID, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row) (Post, error) {
	var (
		id        uuid.UUID
		userID    uuid.UUID
		createdAt time.Time
		updatedAt time.Time
		post      Post
	)
	if err := row.Scan(&id, &userID, &post.AuthorUsername, &post.Title, &post.Content, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	post.ID = id.String()
	post.UserID = userID.String()
	post.CreatedAt = createdAt.UTC()
	post.UpdatedAt = updatedAt.UTC()
	return post, nil
}

func collectPosts(rows pgx.Rows) ([]Post, error) {
	posts := make([]Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
