package activity

import (
	"context"
	"testing"

	"github.com/bengkelpos/backend/pkg/db/models"
	"gorm.io/gorm"
)

type stubActivityRepo struct {
	entries []*models.ActivityLog
	err     error
}

func (s *stubActivityRepo) Create(_ context.Context, entry *models.ActivityLog) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func TestLogPersistsEntry(t *testing.T) {
	repo := &stubActivityRepo{}
	logger, err := NewLogger(repo, nil)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	logger.Log(context.Background(), "budi", models.ActionCreateProduct, "Created product Oli Mesin")

	if len(repo.entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.Username != "budi" || entry.Action != models.ActionCreateProduct {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestLogSwallowsWriteFailure(t *testing.T) {
	repo := &stubActivityRepo{err: gorm.ErrInvalidDB}
	logger, err := NewLogger(repo, nil)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	// must not panic or propagate
	logger.Log(context.Background(), "budi", models.ActionAddStock, "Added 5 units")
}
