package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/snnyvrz/book-manager/internal/model"
	"github.com/snnyvrz/book-manager/internal/repository"
	"gorm.io/gorm"
)

var ErrBookNotFound = errors.New("book not found")

// NotFoundError reports a lookup by id that matched no book.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Book not found with id %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrBookNotFound
}

// BookService runs every operation inside a single repository transaction.
type BookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) *BookService {
	return &BookService{repo: repo}
}

func (s *BookService) Create(ctx context.Context, book model.Book) (*model.Book, error) {
	book.ID = 0

	err := s.repo.Transaction(ctx, func(repo repository.BookRepository) error {
		return repo.Save(ctx, &book)
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return &book, nil
}

func (s *BookService) FindAll(ctx context.Context) ([]model.Book, error) {
	var books []model.Book

	err := s.repo.Transaction(ctx, func(repo repository.BookRepository) error {
		var err error
		books, err = repo.FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

func (s *BookService) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var book *model.Book

	err := s.repo.Transaction(ctx, func(repo repository.BookRepository) error {
		var err error
		book, err = find(ctx, repo, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// Update merges the non-nil fields of patch into the stored book.
func (s *BookService) Update(ctx context.Context, id int64, patch model.Book) (*model.Book, error) {
	var book *model.Book

	err := s.repo.Transaction(ctx, func(repo repository.BookRepository) error {
		existing, err := find(ctx, repo, id)
		if err != nil {
			return err
		}

		existing.Merge(patch)

		if err := repo.Save(ctx, existing); err != nil {
			return fmt.Errorf("update book %d: %w", id, err)
		}

		book = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Transaction(ctx, func(repo repository.BookRepository) error {
		existing, err := find(ctx, repo, id)
		if err != nil {
			return err
		}

		if err := repo.Delete(ctx, existing); err != nil {
			return fmt.Errorf("delete book %d: %w", id, err)
		}
		return nil
	})
}

func (s *BookService) DeleteAll(ctx context.Context) (int64, error) {
	var removed int64

	err := s.repo.Transaction(ctx, func(repo repository.BookRepository) error {
		var err error
		removed, err = repo.DeleteAll(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete all books: %w", err)
	}

	return removed, nil
}

func find(ctx context.Context, repo repository.BookRepository, id int64) (*model.Book, error) {
	book, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("find book %d: %w", id, err)
	}
	return book, nil
}
