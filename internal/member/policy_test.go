package member

import (
	"errors"
	"testing"

	"github.com/dormlife/community-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCheckStatus(t *testing.T) {
	testCases := []struct {
		status model.MemberStatus
		want   error
	}{
		{model.MemberStatusActive, nil},
		{model.MemberStatusAdminVerificationPending, ErrPendingApproval},
		{model.MemberStatusBanned, ErrBannedMember},
		{model.MemberStatusWithdrawal, ErrWithdrawnMember},
		{model.MemberStatus("SUSPENDED"), ErrUnknownStatus},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			err := CheckStatus(tc.status)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCheckSignin_Order(t *testing.T) {
	matches := func(string) bool { return true }
	mismatches := func(string) bool { return false }

	testCases := []struct {
		name    string
		status  model.MemberStatus
		matcher func(string) bool
		want    error
	}{
		{"withdrawn with wrong password", model.MemberStatusWithdrawal, mismatches, ErrWithdrawnMember},
		{"withdrawn with right password", model.MemberStatusWithdrawal, matches, ErrWithdrawnMember},
		{"pending with wrong password", model.MemberStatusAdminVerificationPending, mismatches, ErrWrongPassword},
		{"pending with right password", model.MemberStatusAdminVerificationPending, matches, ErrPendingApproval},
		{"banned with wrong password", model.MemberStatusBanned, mismatches, ErrWrongPassword},
		{"banned with right password", model.MemberStatusBanned, matches, ErrBannedMember},
		{"active with wrong password", model.MemberStatusActive, mismatches, ErrWrongPassword},
		{"active with right password", model.MemberStatusActive, matches, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := &model.Member{Password: "hash", Status: tc.status}

			err := CheckSignin(m, tc.matcher)

			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestCheckSignin_WithdrawnSkipsPasswordCheck(t *testing.T) {
	called := false
	m := &model.Member{Password: "hash", Status: model.MemberStatusWithdrawal}

	err := CheckSignin(m, func(string) bool {
		called = true
		return true
	})

	assert.ErrorIs(t, err, ErrWithdrawnMember)
	assert.False(t, called)
}
