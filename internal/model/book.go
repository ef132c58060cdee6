package model

type Book struct {
	ID     int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Genre  *string `json:"genre"`
	Year   *int    `json:"year"`
	Status *string `json:"status"`
}

func (Book) TableName() string {
	return "books"
}

// Merge copies every non-nil field of patch onto b. The ID is never copied.
func (b *Book) Merge(patch Book) {
	if patch.Title != nil {
		b.Title = patch.Title
	}
	if patch.Author != nil {
		b.Author = patch.Author
	}
	if patch.Genre != nil {
		b.Genre = patch.Genre
	}
	if patch.Year != nil {
		b.Year = patch.Year
	}
	if patch.Status != nil {
		b.Status = patch.Status
	}
}
