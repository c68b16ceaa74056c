package member

import (
	"strings"
	"time"

	"github.com/dormlife/community-api/internal/model"
	"github.com/google/uuid"
)

const unknown = "unknown"

// seoul is Asia/Seoul. Korea has no DST, so a fixed zone avoids depending on tzdata.
var seoul = time.FixedZone("Asia/Seoul", 9*60*60)

// Anonymization holds the values substituted into a withdrawn account.
type Anonymization struct {
	Nickname         string
	UnusablePassword string
	Now              time.Time
}

// NewAnonymization draws a random opaque nickname (32 upper-case hex chars).
func NewAnonymization(unusablePassword string, now time.Time) Anonymization {
	return Anonymization{
		Nickname:         strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")),
		UnusablePassword: unusablePassword,
		Now:              now,
	}
}

// Anonymize returns a copy of m with every personal field replaced and the status set
// to WITHDRAWAL. m is left untouched. Identity and audit columns are kept.
func Anonymize(m model.Member, a Anonymization) model.Member {
	m.Password = a.UnusablePassword
	m.Nickname = a.Nickname
	m.Name = unknown
	m.PhoneNumber = unknown
	m.DormitoryCode = unknown
	m.DormitoryCard = unknown
	m.Birthday = a.Now.In(seoul)
	m.Status = model.MemberStatusWithdrawal
	return m
}
