package models

import "time"

// Token stores one issued TikTok credential set for an open_id.
// At most one row per open_id has IsActive set; Store.Save enforces it.
type Token struct {
	ID               string `gorm:"primaryKey"` // UUID
	OpenID           string `gorm:"index"`
	UnionID          string
	AccessToken      string
	RefreshToken     string
	TokenType        string
	ExpiresIn        int64 // seconds, relative lifetime at issuance
	RefreshExpiresIn int64
	Scope            string
	IsActive         bool `gorm:"default:true;index"`

	// Creator enrichment, populated only when the creator-info call succeeds.
	Nickname         string
	AvatarURL        string
	Username         string
	CommentDisabled  bool
	DuetDisabled     bool
	StitchDisabled   bool
	MaxVideoDuration int64 // seconds

	CreatedAt time.Time
	UpdatedAt time.Time
}
