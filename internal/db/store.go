package db

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mikkon/tiktok-oauth-webhook/internal/db/models"
	apperrors "github.com/mikkon/tiktok-oauth-webhook/internal/errors"
	"github.com/mikkon/tiktok-oauth-webhook/internal/tiktok"
	"github.com/mikkon/tiktok-oauth-webhook/internal/util"
)

// Store is the persistence layer for credential records.
type Store struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewStore wraps an initialized gorm database.
func NewStore(database *gorm.DB, logger zerolog.Logger) *Store {
	return &Store{
		db:     database,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// Save deactivates any previously active tokens for the identity and inserts
// the new record. Both steps run in one transaction so concurrent callbacks
// for the same open_id cannot leave zero or two active rows.
func (s *Store) Save(result *tiktok.TokenResult, info *tiktok.CreatorInfo) (*models.Token, error) {
	record := &models.Token{
		ID:               uuid.New().String(),
		OpenID:           result.OpenID,
		UnionID:          result.UnionID,
		AccessToken:      result.AccessToken,
		RefreshToken:     result.RefreshToken,
		TokenType:        result.TokenType,
		ExpiresIn:        result.ExpiresIn,
		RefreshExpiresIn: result.RefreshExpiresIn,
		Scope:            result.Scope,
		IsActive:         true,
	}
	if info != nil {
		record.Nickname = info.Nickname
		record.AvatarURL = info.AvatarURL
		record.Username = info.Username
		record.CommentDisabled = info.CommentDisabled
		record.DuetDisabled = info.DuetDisabled
		record.StitchDisabled = info.StitchDisabled
		record.MaxVideoDuration = info.MaxVideoDuration
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Token{}).
			Where("open_id = ? AND is_active = ?", result.OpenID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrPersistenceFailed)
	}

	s.logger.Info().
		Str("id", record.ID).
		Str("open_id", record.OpenID).
		Str("access_token", util.SecretPrefix(record.AccessToken, util.DefaultSecretPrefixLen)).
		Msg("token saved")
	return record, nil
}

// ActiveProfile returns the most recently created active record, or nil when
// no credential is active.
func (s *Store) ActiveProfile() (*models.Token, error) {
	var record models.Token
	err := s.db.Where("is_active = ?", true).
		Order("created_at DESC").
		First(&record).Error
	if apperrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Tag(err, apperrors.ErrStorageUnavailable)
	}
	return &record, nil
}

// DeactivateAll clears the active flag on every record. Calling it with no
// active records is a no-op that still succeeds.
func (s *Store) DeactivateAll() (int64, error) {
	res := s.db.Model(&models.Token{}).
		Where("is_active = ?", true).
		Update("is_active", false)
	if res.Error != nil {
		return 0, apperrors.Tag(res.Error, apperrors.ErrPersistenceFailed)
	}
	return res.RowsAffected, nil
}

// Health runs a cheap count probe for the health endpoint. A failure here
// reports degradation, it never crashes the process.
func (s *Store) Health() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Token{}).Count(&count).Error; err != nil {
		return -1, apperrors.Tag(err, apperrors.ErrStorageUnavailable)
	}
	return count, nil
}
