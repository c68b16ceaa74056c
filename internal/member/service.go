package member

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dormlife/community-api/internal/model"
	"github.com/dormlife/community-api/internal/shared/database"
	"github.com/dormlife/community-api/internal/shared/logger"
	"github.com/dormlife/community-api/internal/shared/metrics"
	"github.com/dormlife/community-api/internal/shared/password"
	"github.com/dormlife/community-api/internal/shared/storage"
	"github.com/dormlife/community-api/internal/shared/token"
	"gorm.io/gorm"
)

// PushCleaner removes a member's push history inside the withdrawal transaction.
type PushCleaner interface {
	DeleteByMemberID(ctx context.Context, db *gorm.DB, memberID uint32) error
}

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	hasher           password.Hasher
	refreshStore     token.RefreshStore
	documentStore    storage.DocumentStore
	pushCleaner      PushCleaner
	now              func() time.Time
}

func NewMemberService(
	db *gorm.DB,
	memberRepository *MemberRepository,
	hasher password.Hasher,
	refreshStore token.RefreshStore,
	documentStore storage.DocumentStore,
	pushCleaner PushCleaner,
) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		hasher:           hasher,
		refreshStore:     refreshStore,
		documentStore:    documentStore,
		pushCleaner:      pushCleaner,
		now:              time.Now,
	}
}

func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*GetProfileResponse, error) {
	member, err := s.findByID(ctx, s.db, memberID, false)
	if err != nil {
		return nil, err
	}
	return newProfileResponse(member), nil
}

// ChangePassword replaces the password of memberID.
// A new password equal to the old one is rejected before anything is looked up.
func (s *MemberService) ChangePassword(ctx context.Context, memberID uint32, request *ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if request.NewPassword == request.OldPassword {
		log.Warn("비밀번호 변경 실패 - 기존 비밀번호와 동일", "member_id", memberID)
		return fmt.Errorf("change password memberID=%d: %w", memberID, ErrSamePassword)
	}

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findByID(ctx, tx, memberID, true)
		if err != nil {
			return err
		}

		if s.hasher.Check(request.NewPassword, member.Password) {
			log.Warn("비밀번호 변경 실패 - 현재 비밀번호와 동일", "member_id", memberID)
			return fmt.Errorf("change password memberID=%d: %w", memberID, ErrSamePassword)
		}
		if !s.hasher.Check(request.OldPassword, member.Password) {
			log.Warn("비밀번호 변경 실패 - 기존 비밀번호 불일치", "member_id", memberID)
			return fmt.Errorf("change password memberID=%d: %w", memberID, ErrWrongPassword)
		}

		hashed, err := s.hasher.Hash(request.NewPassword)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			return err
		}

		member.Password = hashed
		member.UpdatedByMember(memberID)
		if err := s.memberRepository.Save(ctx, tx, member); err != nil {
			log.Error("Failed to save member", "error", err)
			return fmt.Errorf("save member: %w", err)
		}

		log.Info("비밀번호 변경 완료", "member_id", memberID)
		return nil
	})
}

// Withdraw anonymizes an ACTIVE member and deletes its push history in one transaction.
// Refresh tokens and the dormitory card image are removed after commit; failures there
// are logged and do not undo the withdrawal.
func (s *MemberService) Withdraw(ctx context.Context, memberID uint32) error {
	log := logger.FromContext(ctx)

	var dormitoryCard string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.findByID(ctx, tx, memberID, true)
		if err != nil {
			return err
		}
		// Only ACTIVE members may withdraw; banned or pending accounts are
		// handled by admins and keep their data.
		if err := CheckStatus(member.Status); err != nil {
			log.Warn("회원 탈퇴 거부", "member_id", memberID, "status", member.Status)
			return fmt.Errorf("withdraw memberID=%d: %w", memberID, err)
		}

		unusable, err := s.hasher.Unusable()
		if err != nil {
			return err
		}

		anonymized := Anonymize(*member, NewAnonymization(unusable, s.now()))
		anonymized.UpdatedByMember(memberID)
		if err := s.memberRepository.Save(ctx, tx, &anonymized); err != nil {
			log.Error("Failed to save anonymized member", "error", err)
			return fmt.Errorf("save anonymized member: %w", err)
		}

		if err := s.pushCleaner.DeleteByMemberID(ctx, tx, memberID); err != nil {
			log.Error("Failed to delete push notifications", "error", err)
			return fmt.Errorf("delete push notifications: %w", err)
		}

		dormitoryCard = member.DormitoryCard
		return nil
	})
	if err != nil {
		return err
	}

	metrics.DefaultAuthMetrics.IncWithdrawal()
	log.Info("회원 탈퇴 완료", "member_id", memberID)

	if err := s.refreshStore.RevokeAll(ctx, strconv.FormatUint(uint64(memberID), 10)); err != nil {
		log.Error("탈퇴 회원 refresh token 폐기 실패", "member_id", memberID, "error", err)
	}
	if err := s.documentStore.Delete(ctx, dormitoryCard); err != nil {
		log.Error("탈퇴 회원 기숙사 카드 이미지 삭제 실패", "member_id", memberID, "error", err)
	}

	return nil
}

// findByID loads the member; forUpdate row-locks it for the rest of the transaction
// so concurrent password changes and withdrawals on one account serialize.
func (s *MemberService) findByID(ctx context.Context, db *gorm.DB, memberID uint32, forUpdate bool) (*model.Member, error) {
	find := s.memberRepository.FindByID
	if forUpdate {
		find = s.memberRepository.FindByIDForUpdate
	}

	member, err := find(ctx, db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	return member, nil
}
