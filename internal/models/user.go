package models

import "time"

// UserRole represents the access level of a user.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a platform account holder. BalanceCents is the user's
// withdrawable ledger balance and is only ever mutated inside a storage
// transaction that also records the corresponding ledger entry.
type User struct {
	Base
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Role                UserRole   `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
	BalanceCents        int64      `gorm:"type:bigint;not null;default:0" json:"balance_cents"`
	ReferralCode        string     `gorm:"size:36;uniqueIndex;not null" json:"referral_code"`
	ReferredByID        *string    `gorm:"type:uuid;index" json:"referred_by_id,omitempty"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	Investments  []Investment  `gorm:"foreignKey:UserID" json:"investments,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	ReferredBy   *User         `gorm:"foreignKey:ReferredByID" json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
