package resumes

import (
	"context"
	"errors"
	"testing"

	"github.com/haseeb-240/AiResume/resume/content"
)

func TestServiceCreateRejectsInvalidContent(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	c := testContent()
	c.PersonalDetails.Email = "not-an-email"

	_, err := svc.Create(context.Background(), "user-a", "My Resume", "modern", c)
	var fieldErrs content.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs["personalDetails.email"]; !ok {
		t.Fatalf("expected email violation, got %v", fieldErrs)
	}
}

func TestServiceCreateRejectsUnknownTemplate(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.Create(context.Background(), "user-a", "My Resume", "neon", testContent())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceGetHidesOtherOwners(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	rec, err := svc.Create(ctx, "user-a", "My Resume", "modern", testContent())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The record exists but belongs to someone else. The caller must not
	// be able to tell that apart from the record not existing at all.
	if _, err := svc.Get(ctx, "user-b", rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if _, err := svc.Get(ctx, "user-b", "does-not-exist"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestServiceUpdateRevalidatesContent(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	rec, err := svc.Create(ctx, "user-a", "My Resume", "modern", testContent())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := testContent()
	bad.PersonalDetails.FullName = "   "
	if _, err := svc.Update(ctx, "user-a", rec.ID, Patch{Content: &bad}); err == nil {
		t.Fatal("expected validation failure on update")
	}

	got, err := svc.Get(ctx, "user-a", rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content.PersonalDetails.FullName != "Ada Lovelace" {
		t.Fatal("failed update must leave the stored record untouched")
	}
}

func TestServiceUpdateForeignOwner(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	rec, err := svc.Create(ctx, "user-a", "My Resume", "modern", testContent())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	title := "Hijacked"
	if _, err := svc.Update(ctx, "user-b", rec.ID, Patch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceDelete(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	rec, err := svc.Create(ctx, "user-a", "My Resume", "modern", testContent())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, "user-b", rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign delete must look like not-found, got %v", err)
	}
	if err := svc.Delete(ctx, "user-a", rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "user-a", rec.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleting a gone record surfaces not-found, got %v", err)
	}
}
