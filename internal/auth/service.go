package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dormlife/community-api/internal/config"
	"github.com/dormlife/community-api/internal/member"
	"github.com/dormlife/community-api/internal/model"
	"github.com/dormlife/community-api/internal/shared/database"
	"github.com/dormlife/community-api/internal/shared/logger"
	"github.com/dormlife/community-api/internal/shared/metrics"
	"github.com/dormlife/community-api/internal/shared/password"
	"github.com/dormlife/community-api/internal/shared/storage"
	"github.com/dormlife/community-api/internal/shared/token"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	hasher           password.Hasher
	tokenManager     token.Manager
	refreshStore     token.RefreshStore
	documentStore    storage.DocumentStore
	requireApproval  bool
	maxUploadSize    int64
	refreshExpiry    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	memberRepository *member.MemberRepository,
	hasher password.Hasher,
	tokenManager token.Manager,
	refreshStore token.RefreshStore,
	documentStore storage.DocumentStore,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		hasher:           hasher,
		tokenManager:     tokenManager,
		refreshStore:     refreshStore,
		documentStore:    documentStore,
		requireApproval:  cfg.Member.RequireApproval,
		maxUploadSize:    cfg.Storage.MaxUploadSize,
		refreshExpiry:    cfg.JWT.RefreshExpiry,
	}
}

// Signup stores the dormitory card image and creates the member.
// New members wait for admin approval unless approval is disabled.
func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) error {
	log := logger.FromContext(ctx)

	// 1. Check if email already exists
	exists, err := a.memberRepository.IsExist(ctx, a.db, request.Email)
	if err != nil {
		metrics.DefaultAuthMetrics.IncSignup(metrics.OutcomeError)
		return fmt.Errorf("check email existence: %w", err)
	}
	if exists {
		metrics.DefaultAuthMetrics.IncSignup(metrics.OutcomeDuplicate)
		log.Warn("회원가입 실패 - 이미 가입된 이메일", "email", logger.MaskEmail(request.Email))
		return fmt.Errorf("email=%s: %w", logger.MaskEmail(request.Email), member.ErrMemberAlreadyExists)
	}

	// 2. Upload dormitory card
	cardURL, err := a.uploadDormitoryCard(ctx, request)
	if err != nil {
		if errors.Is(err, ErrInvalidDormitoryCard) {
			metrics.DefaultAuthMetrics.IncSignup(metrics.OutcomeInvalidDocument)
		} else {
			metrics.DefaultAuthMetrics.IncSignup(metrics.OutcomeError)
		}
		log.Warn("회원가입 실패 - 기숙사 카드 업로드 실패", "error", err)
		return err
	}

	// 3. Hash password
	hashed, err := a.hasher.Hash(request.Password)
	if err != nil {
		a.discardDormitoryCard(ctx, cardURL)
		metrics.DefaultAuthMetrics.IncSignup(metrics.OutcomeError)
		log.Error("Failed to hash password", "error", err)
		return err
	}

	// 4. Create member
	status := model.MemberStatusActive
	if a.requireApproval {
		status = model.MemberStatusAdminVerificationPending
	}

	newMember := model.NewMember(
		request.Email,
		hashed,
		request.Nickname,
		request.Name,
		request.PhoneNumber,
		request.DormitoryCode,
		cardURL,
		request.Birthday,
		status,
	)

	err = database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		return a.memberRepository.Create(ctx, tx, newMember)
	})
	if err != nil {
		a.discardDormitoryCard(ctx, cardURL)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			metrics.DefaultAuthMetrics.IncSignup(metrics.OutcomeDuplicate)
			return fmt.Errorf("email=%s: %w", logger.MaskEmail(request.Email), member.ErrMemberAlreadyExists)
		}
		metrics.DefaultAuthMetrics.IncSignup(metrics.OutcomeError)
		log.Error("Failed to create member", "error", err)
		return fmt.Errorf("create member: %w", err)
	}

	metrics.DefaultAuthMetrics.IncSignup(metrics.OutcomeSuccess)
	log.Info("회원가입 완료", "member_id", newMember.ID, "status", status)
	return nil
}

func (a *AuthService) uploadDormitoryCard(ctx context.Context, request *SignupRequest) (string, error) {
	header := request.DormitoryCard
	if a.maxUploadSize > 0 && header.Size > a.maxUploadSize {
		return "", fmt.Errorf("dormitory card size=%d: %w", header.Size, ErrInvalidDormitoryCard)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open dormitory card: %w", err)
	}
	defer file.Close()

	key := a.documentStore.MakeKey(header.Filename, request.Name)
	url, err := a.documentStore.Upload(ctx, file, key)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedContentType) || errors.Is(err, storage.ErrEmptyFile) {
			return "", fmt.Errorf("%v: %w", err, ErrInvalidDormitoryCard)
		}
		return "", fmt.Errorf("upload dormitory card: %w", err)
	}
	return url, nil
}

// discardDormitoryCard removes an image whose member row was never written.
func (a *AuthService) discardDormitoryCard(ctx context.Context, url string) {
	if err := a.documentStore.Delete(ctx, url); err != nil {
		logger.FromContext(ctx).Error("기숙사 카드 이미지 정리 실패", "url", url, "error", err)
	}
}

// Signin checks the member status and password and issues a token pair.
// A withdrawn account is reported before the password is checked.
func (a *AuthService) Signin(ctx context.Context, request *SigninRequest) (*SigninResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find member by email
	m, err := a.memberRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.DefaultAuthMetrics.IncSignin(metrics.OutcomeNotFound)
			log.Warn("로그인 실패 - member email not found", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("email=%s: %w", logger.MaskEmail(request.Email), member.ErrMemberNotFound)
		}
		metrics.DefaultAuthMetrics.IncSignin(metrics.OutcomeError)
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Status and password policy
	err = member.CheckSignin(m, func(hashed string) bool {
		return a.hasher.Check(request.Password, hashed)
	})
	if err != nil {
		metrics.DefaultAuthMetrics.IncSignin(signinOutcome(err))
		log.Warn("로그인 실패", "member_id", m.ID, "status", m.Status, "error", err)
		return nil, fmt.Errorf("signin memberID=%d: %w", m.ID, err)
	}

	// 3. Generate JWT tokens
	pair, err := a.issueTokens(ctx, m)
	if err != nil {
		metrics.DefaultAuthMetrics.IncSignin(metrics.OutcomeError)
		return nil, err
	}

	metrics.DefaultAuthMetrics.IncSignin(metrics.OutcomeSuccess)
	log.Info("로그인 성공", "member_id", m.ID)

	return &SigninResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Member:       member.NewSummary(m),
	}, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new pair issued.
func (a *AuthService) Refresh(ctx context.Context, request *RefreshRequest) (*TokenResponse, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenManager.ValidateToken(request.RefreshToken)
	if err != nil {
		log.Warn("refresh token 검증 실패", "error", err)
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidRefreshToken)
	}
	if claims.TokenType != token.REFRESH || claims.ID == "" {
		log.Warn("refresh token 아님", "token_type", claims.TokenType)
		return nil, fmt.Errorf("token type %q: %w", claims.TokenType, ErrInvalidRefreshToken)
	}

	// Revoking first is the validity check: of concurrent refreshes with one
	// token only the caller that actually deleted it continues.
	live, err := a.refreshStore.Revoke(ctx, claims.MemberID, claims.ID)
	if err != nil {
		return nil, err
	}
	if !live {
		log.Warn("폐기된 refresh token 사용", "member_id", claims.MemberID)
		return nil, fmt.Errorf("revoked refresh token memberID=%s: %w", claims.MemberID, ErrInvalidRefreshToken)
	}

	memberID, err := strconv.ParseUint(claims.MemberID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("member id %q: %w", claims.MemberID, ErrInvalidRefreshToken)
	}

	m, err := a.memberRepository.FindByID(ctx, a.db, uint32(memberID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("memberID=%d: %w", memberID, member.ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}
	if err := member.CheckStatus(m.Status); err != nil {
		return nil, fmt.Errorf("refresh memberID=%d: %w", memberID, err)
	}

	return a.issueTokens(ctx, m)
}

func (a *AuthService) issueTokens(ctx context.Context, m *model.Member) (*TokenResponse, error) {
	log := logger.FromContext(ctx)

	memberID := strconv.FormatUint(uint64(m.ID), 10)
	accessToken, err := a.tokenManager.GenerateAccessToken(memberID, m.Email)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID := uuid.NewString()
	refreshToken, err := a.tokenManager.GenerateRefreshToken(memberID, m.Email, tokenID)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := a.refreshStore.Save(ctx, memberID, tokenID, a.refreshExpiry); err != nil {
		log.Error("refresh token 저장 실패", "error", err)
		return nil, err
	}

	return &TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func signinOutcome(err error) string {
	switch {
	case errors.Is(err, member.ErrWithdrawnMember):
		return metrics.OutcomeWithdrawn
	case errors.Is(err, member.ErrWrongPassword):
		return metrics.OutcomeWrongPassword
	case errors.Is(err, member.ErrPendingApproval):
		return metrics.OutcomePendingApproval
	case errors.Is(err, member.ErrBannedMember):
		return metrics.OutcomeBanned
	default:
		return metrics.OutcomeError
	}
}
