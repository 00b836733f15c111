package post

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu    sync.RWMutex
	posts map[string]Post
}

// NewMemoryRepository builds an in-memory post store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{posts: make(map[string]Post)}
}

func (r *memoryRepository) Create(_ context.Context, post Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[post.ID] = post
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return post, nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := make([]Post, 0)
	for _, post := range r.posts {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	sortByCreation(posts)
	return posts, nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := make([]Post, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post)
	}
	sortByCreation(posts)
	return posts, nil
}

func (r *memoryRepository) Update(_ context.Context, id, userID, title, content string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok || post.UserID != userID {
		return ErrNotFound
	}
	post.Title = title
	post.Content = content
	post.UpdatedAt = updatedAt
	r.posts[id] = post
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok || post.UserID != userID {
		return ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func sortByCreation(posts []Post) {
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.Before(posts[j].CreatedAt) })
}
