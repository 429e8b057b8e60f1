package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookreviews/pkg/book"
)

func newService() *book.Service {
	return book.NewService(seedRepo())
}

func TestService_Lookups(t *testing.T) {
	svc := newService()

	all := svc.ListAll()
	assert.Len(t, all, 3)

	found, err := svc.GetByISBN("1")
	assert.NoError(t, err)
	assert.Equal(t, "Things Fall Apart", found.Title)

	matching, err := svc.GetByAuthor("Dante Alighieri")
	assert.NoError(t, err)
	assert.Len(t, matching, 1)

	matching, err = svc.GetByAuthor("Nobody")
	assert.Nil(t, matching)
	assert.EqualError(t, err, "No books found for author: Nobody")

	matching, err = svc.GetByTitle("Fairy tales")
	assert.NoError(t, err)
	assert.Len(t, matching, 1)

	matching, err = svc.GetByTitle("No Such Title")
	assert.Nil(t, matching)
	assert.EqualError(t, err, "No books found with the title: No Such Title")
}

func TestService_AddReview(t *testing.T) {
	svc := newService()

	// unknown book wins over empty text
	_, err := svc.AddReview("999", "alice", "")
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = svc.AddReview("1", "alice", "")
	assert.ErrorIs(t, err, book.ErrReviewRequired)

	reviews, err := svc.AddReview("1", "alice", "great")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "great"}, reviews)

	reviews, err = svc.AddReview("1", "alice", "even better")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "even better"}, reviews)
}

func TestService_DeleteReview(t *testing.T) {
	svc := newService()

	_, err := svc.AddReview("1", "alice", "great")
	assert.NoError(t, err)
	_, err = svc.AddReview("1", "bob", "fine")
	assert.NoError(t, err)

	reviews, err := svc.DeleteReview("1", "alice")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"bob": "fine"}, reviews)

	_, err = svc.DeleteReview("1", "alice")
	assert.ErrorIs(t, err, book.ErrNoSuchReview)

	_, err = svc.DeleteReview("999", "alice")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
