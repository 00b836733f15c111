package post

import "time"

// Post is a dream journal entry owned by a user. The author username is
// denormalized onto the record so listings can serialize without a second
// store read.
type Post struct {
	ID             string
	UserID         string
	AuthorUsername string
	Title          string
	Content        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Author is the minimal user subset embedded in serialized posts.
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// View is the outward-facing shape of a post.
type View struct {
	ID        string    `json:"id"`
	User      Author    `json:"user"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// serializeAll maps each post through Serialize.
func serializeAll(posts []Post) []View {
	views := make([]View, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.Serialize())
	}
	return views
}

// Serialize returns the client-safe view of the post.
func (p Post) Serialize() View {
	return View{
		ID:        p.ID,
		User:      Author{ID: p.UserID, Username: p.AuthorUsername},
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
