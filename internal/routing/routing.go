package routing

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"bookreviews/pkg/book"
	"bookreviews/pkg/handlers"
	"bookreviews/pkg/middleware"
	"bookreviews/pkg/session"
	"bookreviews/pkg/token"
	"bookreviews/pkg/user"
)

func InitRoutes(r *mux.Router, jwtSecret string, catalog map[string]*book.Book, sessions session.Repository, logger *slog.Logger) {

	tokens := token.NewManager(jwtSecret)

	userService := user.NewService(user.NewMemoryRepo(), sessions, tokens)
	userHandler := handlers.NewUserHandler(userService, logger)

	bookService := book.NewService(book.NewMemoryRepo(catalog))
	bookHandler := handlers.NewBookHandler(bookService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.Use(middleware.Session(sessions))

	/* auth routers */
	r.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	r.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")

	/* public catalog routers */
	r.HandleFunc("/", bookHandler.ListBooks).Methods("GET")
	r.HandleFunc("/isbn/{isbn}", bookHandler.GetBookByISBN).Methods("GET")
	r.HandleFunc("/author/{author}", bookHandler.GetBooksByAuthor).Methods("GET")
	r.HandleFunc("/title/{title}", bookHandler.GetBooksByTitle).Methods("GET")
	r.HandleFunc("/review/{isbn}", bookHandler.GetReviews).Methods("GET")

	/* session-guarded review routers */
	authRouter.HandleFunc("/review/{isbn}", bookHandler.AddReview).Methods("PUT")
	authRouter.HandleFunc("/review/{isbn}", bookHandler.DeleteReview).Methods("DELETE")
}

func StartServer(r *mux.Router, addr string) {
	fmt.Println("\n\033[32m", "The server is running on "+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
