package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dormlife/community-api/internal/model"
	"github.com/dormlife/community-api/internal/shared/password"
	"github.com/dormlife/community-api/internal/shared/storage"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
)

const TestPublicBaseURL = "https://cdn.example.com"

// NewTestHasher returns a bcrypt hasher with the minimum cost to keep tests fast
func NewTestHasher() *password.BcryptHasher {
	return password.NewBcryptHasher(4)
}

// NewTestDocumentStore returns a document store backed by an in-memory bucket
func NewTestDocumentStore(t *testing.T) *storage.BlobStore {
	t.Helper()

	store := storage.NewBlobStore(memblob.OpenBucket(nil), TestPublicBaseURL)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// CreateMember inserts a member with a bcrypt-hashed password
func CreateMember(t *testing.T, db *gorm.DB, email, plainPassword string, status model.MemberStatus) *model.Member {
	t.Helper()

	hashed, err := NewTestHasher().Hash(plainPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	m := model.NewMember(
		email,
		hashed,
		"nick-"+email,
		"홍길동",
		"010-1234-5678",
		"DORM-A",
		TestPublicBaseURL+"/dormitory_card/test/card.png",
		time.Date(2000, 5, 17, 0, 0, 0, 0, time.UTC),
		status,
	)
	if err := db.WithContext(context.Background()).Create(m).Error; err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
	return m
}

// CreateBoard inserts a board
func CreateBoard(t *testing.T, db *gorm.DB, name string) *model.Board {
	t.Helper()

	board := &model.Board{Name: name}
	if err := db.Create(board).Error; err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	return board
}
