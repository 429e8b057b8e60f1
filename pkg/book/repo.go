package book

import (
	"sort"
	"sync"
)

// MemoryRepo holds the catalog seeded at process start. Books are never
// added or removed after seeding; only their review mappings mutate.
type MemoryRepo struct {
	mu    sync.RWMutex
	books map[string]*Book
}

func NewMemoryRepo(seed map[string]*Book) *MemoryRepo {
	books := make(map[string]*Book, len(seed))
	for isbn, b := range seed {
		cp := *b
		cp.ISBN = isbn
		books[isbn] = &cp
	}
	return &MemoryRepo{books: books}
}

// Readers get copies; the live maps stay behind the lock.
func snapshot(b *Book) *Book {
	cp := *b
	cp.Reviews = copyReviews(b.Reviews)
	return &cp
}

func copyReviews(reviews map[string]string) map[string]string {
	cp := make(map[string]string, len(reviews))
	for username, text := range reviews {
		cp[username] = text
	}
	return cp
}

func (r *MemoryRepo) GetAll() []*Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Book, 0, len(r.books))
	for _, b := range r.books {
		all = append(all, snapshot(b))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ISBN < all[j].ISBN })
	return all
}

func (r *MemoryRepo) GetByISBN(isbn string) (*Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return snapshot(b), nil
}

func (r *MemoryRepo) GetByAuthor(author string) []*Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matching := make([]*Book, 0)
	for _, b := range r.books {
		if b.Author == author {
			matching = append(matching, snapshot(b))
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].ISBN < matching[j].ISBN })
	return matching
}

func (r *MemoryRepo) GetByTitle(title string) []*Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matching := make([]*Book, 0)
	for _, b := range r.books {
		if b.Title == title {
			matching = append(matching, snapshot(b))
		}
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].ISBN < matching[j].ISBN })
	return matching
}

func (r *MemoryRepo) Reviews(isbn string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return copyReviews(b.Reviews), nil
}

func (r *MemoryRepo) SetReview(isbn, username, text string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	if b.Reviews == nil {
		b.Reviews = make(map[string]string, 1)
	}
	b.Reviews[username] = text
	return copyReviews(b.Reviews), nil
}

func (r *MemoryRepo) DeleteReview(isbn, username string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	if _, ok := b.Reviews[username]; !ok {
		return nil, ErrNoSuchReview
	}
	delete(b.Reviews, username)
	return copyReviews(b.Reviews), nil
}
