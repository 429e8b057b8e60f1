package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookreviews/pkg/book"
)

func seedRepo() *book.MemoryRepo {
	return book.NewMemoryRepo(map[string]*book.Book{
		"1": {Title: "Things Fall Apart", Author: "Chinua Achebe"},
		"2": {Title: "Fairy tales", Author: "Hans Christian Andersen"},
		"3": {Title: "The Divine Comedy", Author: "Dante Alighieri"},
	})
}

func TestMemoryRepo_GetAll(t *testing.T) {
	repo := seedRepo()

	all := repo.GetAll()

	assert.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ISBN)
	assert.Equal(t, "2", all[1].ISBN)
	assert.Equal(t, "3", all[2].ISBN)
	assert.NotNil(t, all[0].Reviews)
	assert.Empty(t, all[0].Reviews)
}

func TestMemoryRepo_GetByISBN(t *testing.T) {
	repo := seedRepo()

	b, err := repo.GetByISBN("2")
	assert.NoError(t, err)
	assert.Equal(t, "2", b.ISBN)
	assert.Equal(t, "Fairy tales", b.Title)

	b, err = repo.GetByISBN("999")
	assert.Nil(t, b)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestMemoryRepo_GetByAuthorAndTitle(t *testing.T) {
	repo := seedRepo()

	byAuthor := repo.GetByAuthor("Chinua Achebe")
	assert.Len(t, byAuthor, 1)
	assert.Equal(t, "1", byAuthor[0].ISBN)

	// exact, case-sensitive match only
	assert.Empty(t, repo.GetByAuthor("chinua achebe"))
	assert.Empty(t, repo.GetByAuthor("Nobody"))

	byTitle := repo.GetByTitle("The Divine Comedy")
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "3", byTitle[0].ISBN)

	assert.Empty(t, repo.GetByTitle("the divine comedy"))
}

func TestMemoryRepo_ReviewLifecycle(t *testing.T) {
	repo := seedRepo()

	reviews, err := repo.Reviews("1")
	assert.NoError(t, err)
	assert.Empty(t, reviews)

	reviews, err = repo.SetReview("1", "alice", "great")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "great"}, reviews)

	// overwrite, never duplicate
	reviews, err = repo.SetReview("1", "alice", "changed my mind")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "changed my mind"}, reviews)

	reviews, err = repo.SetReview("1", "bob", "ok")
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)

	// delete removes only the named user's entry
	reviews, err = repo.DeleteReview("1", "alice")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"bob": "ok"}, reviews)

	_, err = repo.DeleteReview("1", "alice")
	assert.ErrorIs(t, err, book.ErrNoSuchReview)
}

func TestMemoryRepo_ReviewErrors(t *testing.T) {
	repo := seedRepo()

	_, err := repo.Reviews("999")
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = repo.SetReview("999", "alice", "text")
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = repo.DeleteReview("999", "alice")
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	_, err = repo.DeleteReview("2", "alice")
	assert.ErrorIs(t, err, book.ErrNoSuchReview)
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	repo := seedRepo()

	_, err := repo.SetReview("1", "alice", "great")
	assert.NoError(t, err)

	b, err := repo.GetByISBN("1")
	assert.NoError(t, err)
	b.Reviews["mallory"] = "injected"

	reviews, err := repo.Reviews("1")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "great"}, reviews)
}
