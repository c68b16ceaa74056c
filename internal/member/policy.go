package member

import (
	"fmt"

	"github.com/dormlife/community-api/internal/model"
)

// CheckStatus allows only ACTIVE members through.
func CheckStatus(status model.MemberStatus) error {
	switch status {
	case model.MemberStatusActive:
		return nil
	case model.MemberStatusAdminVerificationPending:
		return ErrPendingApproval
	case model.MemberStatusBanned:
		return ErrBannedMember
	case model.MemberStatusWithdrawal:
		return ErrWithdrawnMember
	default:
		return fmt.Errorf("status=%q: %w", status, ErrUnknownStatus)
	}
}

// CheckSignin applies the signin policy in fixed order:
// withdrawal, then password, then pending/banned.
// The withdrawal check runs before the password check on purpose; see DESIGN.md.
func CheckSignin(m *model.Member, passwordMatches func(hashed string) bool) error {
	if m.Status == model.MemberStatusWithdrawal {
		return ErrWithdrawnMember
	}
	if !passwordMatches(m.Password) {
		return ErrWrongPassword
	}
	return CheckStatus(m.Status)
}
