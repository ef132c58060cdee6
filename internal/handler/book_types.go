package handler

import "github.com/snnyvrz/book-manager/internal/model"

// BookRequest is the body of POST and PUT. Fields left out or sent as null
// are not written on update.
type BookRequest struct {
	Title  *string `json:"title" example:"Dune"`
	Author *string `json:"author" example:"Frank Herbert"`
	Genre  *string `json:"genre" example:"SciFi"`
	Year   *int    `json:"year" example:"1965"`
	Status *string `json:"status" example:"TO_READ"`
}

type Book struct {
	ID     int64   `json:"id" example:"1"`
	Title  *string `json:"title" example:"Dune"`
	Author *string `json:"author" example:"Frank Herbert"`
	Genre  *string `json:"genre" example:"SciFi"`
	Year   *int    `json:"year" example:"1965"`
	Status *string `json:"status" example:"TO_READ"`
}

func (r BookRequest) toModel() model.Book {
	return model.Book{
		Title:  r.Title,
		Author: r.Author,
		Genre:  r.Genre,
		Year:   r.Year,
		Status: r.Status,
	}
}

func toBookResponse(b model.Book) Book {
	return Book{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Genre:  b.Genre,
		Year:   b.Year,
		Status: b.Status,
	}
}

func toBookListResponse(books []model.Book) []Book {
	responses := make([]Book, 0, len(books))
	for _, b := range books {
		responses = append(responses, toBookResponse(b))
	}
	return responses
}
