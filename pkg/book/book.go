package book

import "errors"

// Error strings double as the client-facing messages.
var (
	ErrBookNotFound   = errors.New("Book not found")
	ErrReviewRequired = errors.New("Review is required")
	ErrNoSuchReview   = errors.New("No review by this user for this book")
)

type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

type Repository interface {
	GetAll() []*Book
	GetByISBN(isbn string) (*Book, error)
	GetByAuthor(author string) []*Book
	GetByTitle(title string) []*Book
	Reviews(isbn string) (map[string]string, error)
	SetReview(isbn, username, text string) (map[string]string, error)
	DeleteReview(isbn, username string) (map[string]string, error)
}
