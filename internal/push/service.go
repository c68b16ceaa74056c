package push

import (
	"context"
	"fmt"

	"github.com/dormlife/community-api/internal/shared/database"
	"github.com/dormlife/community-api/internal/shared/logger"
	"gorm.io/gorm"
)

type PushService struct {
	db             *gorm.DB
	pushRepository *PushRepository
}

func NewPushService(db *gorm.DB, pushRepository *PushRepository) *PushService {
	return &PushService{
		db:             db,
		pushRepository: pushRepository,
	}
}

func (s *PushService) List(ctx context.Context, memberID uint32) (*ListResponse, error) {
	notifications, err := s.pushRepository.ListByMemberID(ctx, s.db, memberID)
	if err != nil {
		return nil, fmt.Errorf("푸시 알림 조회 실패: %w", err)
	}
	return newListResponse(notifications), nil
}

// Check marks the given notifications as read. Every id must belong to memberID,
// otherwise nothing is changed.
func (s *PushService) Check(ctx context.Context, memberID uint32, request *CheckRequest) error {
	log := logger.FromContext(ctx)
	ids := uniqueIDs(request.PushIDs)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		owned, err := s.pushRepository.CountOwned(ctx, tx, memberID, ids)
		if err != nil {
			return fmt.Errorf("count push notifications: %w", err)
		}
		if owned != int64(len(ids)) {
			log.Warn("푸시 알림 확인 실패 - 존재하지 않거나 다른 회원의 알림", "member_id", memberID, "requested", len(ids), "owned", owned)
			return fmt.Errorf("pushIDs=%v: %w", ids, ErrPushNotFound)
		}

		if err := s.pushRepository.MarkChecked(ctx, tx, memberID, ids); err != nil {
			return fmt.Errorf("mark push notifications checked: %w", err)
		}
		return nil
	})
}

func uniqueIDs(ids []uint32) []uint32 {
	seen := make(map[uint32]struct{}, len(ids))
	unique := make([]uint32, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
