package address

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mileage-logbook/internal/models"
)

// fakeRepo keeps addresses in insertion order per user.
type fakeRepo struct {
	rows []*models.Address
	seq  int
}

func (f *fakeRepo) ListByUserID(ctx context.Context, userID string) ([]*models.Address, error) {
	var out []*models.Address
	for i := len(f.rows) - 1; i >= 0; i-- { // newest first
		if f.rows[i].UserID == userID {
			cp := *f.rows[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, userID, addressID string) (*models.Address, error) {
	for _, a := range f.rows {
		if a.ID == addressID && a.UserID == userID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) Insert(ctx context.Context, userID, text string) (*models.Address, error) {
	f.seq++
	a := &models.Address{
		ID:          fmt.Sprintf("addr-%d", f.seq),
		UserID:      userID,
		AddressText: text,
		CreatedAt:   time.Now(),
	}
	f.rows = append(f.rows, a)
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) Update(ctx context.Context, userID, addressID, text string) (*models.Address, error) {
	for _, a := range f.rows {
		if a.ID == addressID && a.UserID == userID {
			a.AddressText = text
			cp := *a
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, userID, addressID string) error {
	for i, a := range f.rows {
		if a.ID == addressID && a.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func TestCreateThenListRoundTrips(t *testing.T) {
	fr := &fakeRepo{}
	svc := NewService(fr)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "u1", "  1600 Pennsylvania Ave  "); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	list, err := svc.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	count := 0
	for _, a := range list {
		if a.AddressText == "1600 Pennsylvania Ave" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("saved text appears %d times; want exactly 1", count)
	}
}

func TestCreateRejectsEmptyText(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if _, err := svc.Create(context.Background(), "u1", "   "); err != models.ErrEmptyAddress {
		t.Errorf("Create blank err = %v; want ErrEmptyAddress", err)
	}
}

func TestUpdateAndDeleteAreOwnerScoped(t *testing.T) {
	fr := &fakeRepo{}
	svc := NewService(fr)
	ctx := context.Background()

	a, err := svc.Create(ctx, "u1", "somewhere")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Update(ctx, "u2", a.ID, "elsewhere"); err != models.ErrNotFound {
		t.Errorf("Update by non-owner err = %v; want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, "u2", a.ID); err != models.ErrNotFound {
		t.Errorf("Delete by non-owner err = %v; want ErrNotFound", err)
	}
	// The row is untouched.
	if got, _ := svc.Get(ctx, "u1", a.ID); got == nil || got.AddressText != "somewhere" {
		t.Errorf("row after foreign delete = %+v; want unchanged", got)
	}

	if err := svc.Delete(ctx, "u1", a.ID); err != nil {
		t.Errorf("Delete by owner err = %v; want nil", err)
	}
}
