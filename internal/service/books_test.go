package service

import (
	"context"
	"errors"
	"testing"

	"github.com/snnyvrz/book-manager/internal/model"
	"github.com/snnyvrz/book-manager/internal/repository"
	"github.com/snnyvrz/book-manager/internal/testutil"
	"gorm.io/gorm"
)

type fakeBookRepo struct {
	SaveFn       func(ctx context.Context, b *model.Book) error
	FindAllFn    func(ctx context.Context) ([]model.Book, error)
	FindByIDFn   func(ctx context.Context, id int64) (*model.Book, error)
	DeleteFn     func(ctx context.Context, b *model.Book) error
	DeleteByIDFn func(ctx context.Context, id int64) error
	DeleteAllFn  func(ctx context.Context) (int64, error)

	transactions int
}

func (f *fakeBookRepo) Save(ctx context.Context, b *model.Book) error {
	if f.SaveFn != nil {
		return f.SaveFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) FindAll(ctx context.Context) ([]model.Book, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx)
	}
	return []model.Book{}, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookRepo) Delete(ctx context.Context, b *model.Book) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) DeleteByID(ctx context.Context, id int64) error {
	if f.DeleteByIDFn != nil {
		return f.DeleteByIDFn(ctx, id)
	}
	return nil
}

func (f *fakeBookRepo) DeleteAll(ctx context.Context) (int64, error) {
	if f.DeleteAllFn != nil {
		return f.DeleteAllFn(ctx)
	}
	return 0, nil
}

func (f *fakeBookRepo) Transaction(ctx context.Context, fn func(repo repository.BookRepository) error) error {
	f.transactions++
	return fn(f)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newService(t *testing.T) *BookService {
	t.Helper()
	return NewBookService(repository.NewGormBookRepository(testutil.NewTestDB(t)))
}

func dune() model.Book {
	return model.Book{
		Title:  strPtr("Dune"),
		Author: strPtr("Herbert"),
		Genre:  strPtr("SciFi"),
		Year:   intPtr(1965),
		Status: strPtr("available"),
	}
}

func TestBookService_CreateThenFindByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dune())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	found, err := svc.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if found.ID != created.ID ||
		*found.Title != *created.Title ||
		*found.Author != *created.Author ||
		*found.Genre != *created.Genre ||
		*found.Year != *created.Year ||
		*found.Status != *created.Status {
		t.Fatalf("round trip mismatch: created %+v, found %+v", created, found)
	}
}

func TestBookService_CreateIgnoresClientID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	book := dune()
	book.ID = 500

	created, err := svc.Create(ctx, book)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 500 {
		t.Fatalf("expected store-assigned id, got client id")
	}
}

func TestBookService_CreateTwiceMakesTwoRecords(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, dune())
	b, _ := svc.Create(ctx, dune())

	if a.ID == b.ID {
		t.Fatalf("expected a retried create to get a new id")
	}
}

func TestBookService_FindByIDUnknown(t *testing.T) {
	svc := newService(t)

	_, err := svc.FindByID(context.Background(), 12345)

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != 12345 {
		t.Errorf("expected id 12345 in error, got %d", nf.ID)
	}
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("expected errors.Is(err, ErrBookNotFound)")
	}
	if err.Error() != "Book not found with id 12345" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestBookService_DeleteThenFindByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, dune())

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := svc.FindByID(ctx, created.ID); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestBookService_FindAllAfterCreatesAndDeletes(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	const n, m = 5, 2

	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		b, err := svc.Create(ctx, dune())
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		ids = append(ids, b.ID)
	}

	for _, id := range ids[:m] {
		if err := svc.Delete(ctx, id); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
	}

	books, err := svc.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll returned error: %v", err)
	}
	if len(books) != n-m {
		t.Fatalf("expected %d books, got %d", n-m, len(books))
	}
}

func TestBookService_UpdatePartialMerge(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, dune())

	updated, err := svc.Update(ctx, created.ID, model.Book{Title: strPtr("Dune (2nd ed)")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, updated.ID)
	}
	if *updated.Title != "Dune (2nd ed)" {
		t.Errorf("expected new title, got %q", *updated.Title)
	}
	if *updated.Author != "Herbert" || *updated.Genre != "SciFi" || *updated.Year != 1965 || *updated.Status != "available" {
		t.Errorf("expected other fields untouched, got %+v", updated)
	}

	stored, _ := svc.FindByID(ctx, created.ID)
	if *stored.Title != "Dune (2nd ed)" {
		t.Errorf("expected stored title to be updated, got %q", *stored.Title)
	}
}

func TestBookService_UpdateMergesEveryField(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, model.Book{Title: strPtr("Dune")})

	updated, err := svc.Update(ctx, created.ID, model.Book{
		Genre:  strPtr("SciFi"),
		Year:   intPtr(1965),
		Status: strPtr("READ"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Genre == nil || *updated.Genre != "SciFi" {
		t.Errorf("expected genre to be merged, got %v", updated.Genre)
	}
	if updated.Year == nil || *updated.Year != 1965 {
		t.Errorf("expected year to be merged, got %v", updated.Year)
	}
	if updated.Status == nil || *updated.Status != "READ" {
		t.Errorf("expected status to be merged, got %v", updated.Status)
	}
	if updated.Author != nil {
		t.Errorf("expected author to stay null, got %q", *updated.Author)
	}
}

func TestBookService_UpdateIsIdempotent(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, dune())
	patch := model.Book{Title: strPtr("Children of Dune"), Year: intPtr(1976)}

	if _, err := svc.Update(ctx, created.ID, patch); err != nil {
		t.Fatalf("first Update returned error: %v", err)
	}
	once, _ := svc.FindByID(ctx, created.ID)

	if _, err := svc.Update(ctx, created.ID, patch); err != nil {
		t.Fatalf("second Update returned error: %v", err)
	}
	twice, _ := svc.FindByID(ctx, created.ID)

	if *once.Title != *twice.Title || *once.Year != *twice.Year ||
		*once.Author != *twice.Author || *once.Genre != *twice.Genre || *once.Status != *twice.Status {
		t.Fatalf("expected identical state, got %+v then %+v", once, twice)
	}

	books, _ := svc.FindAll(ctx)
	if len(books) != 1 {
		t.Fatalf("expected update not to create rows, got %d books", len(books))
	}
}

func TestBookService_UpdateUnknown(t *testing.T) {
	svc := newService(t)

	_, err := svc.Update(context.Background(), 9, model.Book{Title: strPtr("x")})
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookService_DeleteAll(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	svc.Create(ctx, dune())
	svc.Create(ctx, dune())

	removed, err := svc.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll returned error: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}

	books, _ := svc.FindAll(ctx)
	if len(books) != 0 {
		t.Fatalf("expected empty store, got %d", len(books))
	}
}

func TestBookService_EveryCallUsesOneTransaction(t *testing.T) {
	repo := &fakeBookRepo{
		FindByIDFn: func(ctx context.Context, id int64) (*model.Book, error) {
			return &model.Book{ID: id}, nil
		},
	}
	svc := NewBookService(repo)
	ctx := context.Background()

	svc.Create(ctx, dune())
	svc.FindAll(ctx)
	svc.FindByID(ctx, 1)
	svc.Update(ctx, 1, dune())
	svc.Delete(ctx, 1)
	svc.DeleteAll(ctx)

	if repo.transactions != 6 {
		t.Fatalf("expected 6 transactions, got %d", repo.transactions)
	}
}

func TestBookService_RepositoryFailuresAreNotNotFound(t *testing.T) {
	dbErr := errors.New("connection reset")

	repo := &fakeBookRepo{
		SaveFn: func(ctx context.Context, b *model.Book) error {
			return dbErr
		},
		FindAllFn: func(ctx context.Context) ([]model.Book, error) {
			return nil, dbErr
		},
		FindByIDFn: func(ctx context.Context, id int64) (*model.Book, error) {
			return nil, dbErr
		},
	}
	svc := NewBookService(repo)
	ctx := context.Background()

	_, createErr := svc.Create(ctx, dune())
	_, listErr := svc.FindAll(ctx)
	_, getErr := svc.FindByID(ctx, 1)
	deleteErr := svc.Delete(ctx, 1)

	for name, err := range map[string]error{
		"create": createErr,
		"list":   listErr,
		"get":    getErr,
		"delete": deleteErr,
	} {
		if !errors.Is(err, dbErr) {
			t.Errorf("%s: expected wrapped repository error, got %v", name, err)
		}
		if errors.Is(err, ErrBookNotFound) {
			t.Errorf("%s: repository failure must not look like not found", name)
		}
	}
}

func TestBookService_UpdateSaveFailureRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	gormRepo := repository.NewGormBookRepository(db)
	svc := NewBookService(gormRepo)
	ctx := context.Background()

	created, _ := svc.Create(ctx, dune())

	if err := db.Migrator().DropColumn(&model.Book{}, "status"); err != nil {
		t.Skipf("sqlite build cannot drop columns: %v", err)
	}

	if _, err := svc.Update(ctx, created.ID, model.Book{Title: strPtr("changed")}); err == nil {
		t.Fatalf("expected update against a broken table to fail")
	}

	var title string
	if err := db.Raw("SELECT title FROM books WHERE id = ?", created.ID).Scan(&title).Error; err != nil {
		t.Fatalf("raw select failed: %v", err)
	}
	if title != "Dune" {
		t.Fatalf("expected failed update to leave title unchanged, got %q", title)
	}
}
