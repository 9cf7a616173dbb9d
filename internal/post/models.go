package post

import "time"

// Post is the persistent blog-post model. The author is stored as two
// separate name fields; the single display string clients see is derived
// at read time (see Author.Display), never persisted.
type Post struct {
	ID      string    `bson:"id"`
	Title   string    `bson:"title"`
	Content string    `bson:"content"`
	Author  Author    `bson:"author"`
	Created time.Time `bson:"created"`
}

type Author struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
}

// Display returns the client-facing author string.
func (a Author) Display() string {
	return a.FirstName + " " + a.LastName
}

// Response is the API serialization of a Post shared by list, create and
// update handlers.
type Response struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}

func (p *Post) Response() Response {
	return Response{
		ID:      p.ID,
		Title:   p.Title,
		Author:  p.Author.Display(),
		Content: p.Content,
		Created: p.Created,
	}
}
