package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/book-manager/internal/model"
	"github.com/snnyvrz/book-manager/internal/validation"
)

type BookService interface {
	Create(ctx context.Context, book model.Book) (*model.Book, error)
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, patch model.Book) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type BookHandler struct {
	svc BookService
}

func NewBookHandler(svc BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.POST("", h.CreateBook)
		books.GET("", h.ListBooks)
		books.DELETE("/all", h.DeleteAllBooks)
		books.GET("/:id", h.GetBookByID)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book. Every field is optional; the id is assigned by the server.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      BookRequest                true  "Book to create"
// @Success      201      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Malformed body"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req BookRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	book, err := h.svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		writeServiceError(c, err, "failed to create book")
		return
	}

	c.JSON(http.StatusCreated, toBookResponse(*book))
}

// ListBooks godoc
// @Summary      List books
// @Description  Get every book, ordered by id
// @Tags         books
// @Produce      json
// @Success      200  {array}   Book
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.svc.FindAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "failed to fetch books")
		return
	}

	c.JSON(http.StatusOK, toBookListResponse(books))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  Book
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "failed to fetch book")
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Overwrite the fields present in the body; absent or null fields keep their stored value
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                        true  "Book ID"
// @Param        payload  body      BookRequest                true  "Fields to update"
// @Success      200      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req BookRequest
	if !validation.BindJSON(c, &req) {
		return
	}

	book, err := h.svc.Update(c.Request.Context(), id, req.toModel())
	if err != nil {
		writeServiceError(c, err, "failed to update book")
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      204  {string}  string  "No content"
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "failed to delete book")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllBooks godoc
// @Summary      Delete every book
// @Tags         books
// @Produce      json
// @Success      204  {string}  string  "No content"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/all [delete]
func (h *BookHandler) DeleteAllBooks(c *gin.Context) {
	removed, err := h.svc.DeleteAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "failed to delete books")
		return
	}

	zerolog.Ctx(c.Request.Context()).Info().Int64("removed", removed).Msg("deleted all books")

	c.Status(http.StatusNoContent)
}
