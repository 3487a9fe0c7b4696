package content

// Package content contains domain types for the scoped content operations
// the client performs on a user's behalf (listing and deleting posts).

// Post is a single entry in a user's post listing.
// AuthorUsername is denormalized by the server from the author record.
type Post struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	IsPrivate      bool   `json:"is_private"`
	AuthorID       int64  `json:"author"`
	AuthorUsername string `json:"author_username"`
}
