package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction runs fn inside a transaction bound to ctx. fn's error rolls the
// transaction back; nil commits. Repositories take the tx handle, so the same
// repository method serves both transactional and plain calls.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := memberRepository.Save(ctx, tx, &anonymized); err != nil {
//	        return err // rollback
//	    }
//	    return pushRepository.DeleteByMemberID(ctx, tx, memberID)
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
