package verification

import "time"

// Channels. The same flow serves client and vendor accounts; the channel only
// decides how the code travels.
const (
	ChannelEmail = "email"
	ChannelPhone = "phone"
)

type Verification struct {
	ID          int64      `gorm:"primaryKey"`
	UserID      string     `gorm:"column:user_id;type:char(36);not null;index:ix_verifications_user"`
	Channel     string     `gorm:"column:channel;type:varchar(8);not null"`
	Target      string     `gorm:"column:target;type:varchar(255);not null"` // e-mail ou numéro E.164
	CodeHash    string     `gorm:"column:code_hash;type:char(64);not null"`
	Attempts    int        `gorm:"column:attempts;not null;default:0"`
	MaxAttempts int        `gorm:"column:max_attempts;not null;default:3"`
	ExpiresAt   time.Time  `gorm:"column:expires_at;type:datetime(3);not null"`
	VerifiedAt  *time.Time `gorm:"column:verified_at;type:datetime(3)"`
	CreatedAt   time.Time  `gorm:"column:created_at;type:datetime(3)"`
}

func (Verification) TableName() string { return "verifications" }

type RateLimit struct {
	ID            int64     `gorm:"primaryKey"`
	UserID        string    `gorm:"column:user_id;type:char(36);not null;index:ix_verification_limits_user"`
	Action        string    `gorm:"column:action;type:varchar(32);not null"`
	AttemptCount  int       `gorm:"column:attempt_count;not null;default:0"`
	LastAttemptAt time.Time `gorm:"column:last_attempt_at;type:datetime(3);not null"`
	ExpiresAt     time.Time `gorm:"column:expires_at;type:datetime(3);not null"`
	CreatedAt     time.Time `gorm:"column:created_at;type:datetime(3)"`
}

func (RateLimit) TableName() string { return "verification_rate_limits" }

type SentLog struct {
	ID                int64      `gorm:"primaryKey"`
	UserID            string     `gorm:"column:user_id;type:char(36);not null"`
	Channel           string     `gorm:"column:channel;type:varchar(8);not null"`
	Target            string     `gorm:"column:target;type:varchar(255);not null"`
	Status            string     `gorm:"column:status;type:varchar(16);not null"` // sent|failed
	ProviderMessageID *string    `gorm:"column:provider_message_id;type:varchar(128)"`
	ErrorMessage      *string    `gorm:"column:error_message;type:text"`
	SentAt            *time.Time `gorm:"column:sent_at;type:datetime(3)"`
	CreatedAt         time.Time  `gorm:"column:created_at;type:datetime(3)"`
}

func (SentLog) TableName() string { return "verification_sent_logs" }
