package book

import "fmt"

type ServiceInterface interface {
	ListAll() []*Book
	GetByISBN(isbn string) (*Book, error)
	GetByAuthor(author string) ([]*Book, error)
	GetByTitle(title string) ([]*Book, error)
	Reviews(isbn string) (map[string]string, error)
	AddReview(isbn, username, text string) (map[string]string, error)
	DeleteReview(isbn, username string) (map[string]string, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) ListAll() []*Book {
	return s.Repo.GetAll()
}

func (s *Service) GetByISBN(isbn string) (*Book, error) {
	return s.Repo.GetByISBN(isbn)
}

func (s *Service) GetByAuthor(author string) ([]*Book, error) {
	matching := s.Repo.GetByAuthor(author)
	if len(matching) == 0 {
		return nil, fmt.Errorf("No books found for author: %s", author)
	}
	return matching, nil
}

func (s *Service) GetByTitle(title string) ([]*Book, error) {
	matching := s.Repo.GetByTitle(title)
	if len(matching) == 0 {
		return nil, fmt.Errorf("No books found with the title: %s", title)
	}
	return matching, nil
}

func (s *Service) Reviews(isbn string) (map[string]string, error) {
	return s.Repo.Reviews(isbn)
}

// AddReview inserts or overwrites the caller's review, exactly one per
// user per book. The book check comes before the empty-text check so an
// unknown isbn reports 404 rather than 400.
func (s *Service) AddReview(isbn, username, text string) (map[string]string, error) {
	if _, err := s.Repo.GetByISBN(isbn); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, ErrReviewRequired
	}
	return s.Repo.SetReview(isbn, username, text)
}

// DeleteReview removes only the caller's own entry.
func (s *Service) DeleteReview(isbn, username string) (map[string]string, error) {
	return s.Repo.DeleteReview(isbn, username)
}
