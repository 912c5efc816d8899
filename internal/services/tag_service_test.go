package services

import (
	"context"
	"errors"
	"testing"

	"bloghub/internal/models"
)

func TestTagService_CreateAndDuplicate(t *testing.T) {
	repo := newMemTagRepo()
	svc := NewTagService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Tag{Name: "golang"})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if created.ID == 0 || created.Name != "golang" {
		t.Errorf("создан некорректный тег: %+v", created)
	}

	if _, err := svc.Create(ctx, &models.Tag{Name: "golang"}); !errors.Is(err, ErrConflict) {
		t.Errorf("дубликат имени: ожидалась ErrConflict, получено %v", err)
	}
	if len(repo.tags) != 1 {
		t.Errorf("конфликт не должен создавать строку: тегов %d", len(repo.tags))
	}
}

func TestTagService_NameIsCaseSensitive(t *testing.T) {
	repo := newMemTagRepo()
	svc := NewTagService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &models.Tag{Name: "Go"}); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	// сравнение имён точное, "go" и "Go" — разные теги
	if _, err := svc.Create(ctx, &models.Tag{Name: "go"}); err != nil {
		t.Errorf("имя в другом регистре не конфликт: %v", err)
	}
}

func TestTagService_CreateEmptyName(t *testing.T) {
	svc := NewTagService(newMemTagRepo())

	if _, err := svc.Create(context.Background(), &models.Tag{Name: "   "}); !errors.Is(err, ErrValidation) {
		t.Errorf("пустое имя: ожидалась ErrValidation, получено %v", err)
	}
}

func TestTagService_Update(t *testing.T) {
	repo := newMemTagRepo()
	svc := NewTagService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, &models.Tag{Name: "golang"})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	second, err := svc.Create(ctx, &models.Tag{Name: "postgres"})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	// переименование в занятое имя — конфликт
	if _, err := svc.Update(ctx, second.ID, &models.Tag{Name: "golang"}); !errors.Is(err, ErrConflict) {
		t.Errorf("ожидалась ErrConflict, получено %v", err)
	}

	// обновление с собственным именем не конфликтует само с собой
	if _, err := svc.Update(ctx, first.ID, &models.Tag{Name: "golang"}); err != nil {
		t.Errorf("обновление без смены имени: %v", err)
	}

	updated, err := svc.Update(ctx, second.ID, &models.Tag{Name: "databases"})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if updated.Name != "databases" {
		t.Errorf("имя после обновления: получено %q", updated.Name)
	}

	if _, err := svc.Update(ctx, 999, &models.Tag{Name: "x"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("несуществующий тег: ожидалась ErrNotFound, получено %v", err)
	}
}

func TestTagService_Delete(t *testing.T) {
	repo := newMemTagRepo()
	svc := NewTagService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.Tag{Name: "golang"})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("повторное удаление: ожидалась ErrNotFound, получено %v", err)
	}
}
