package db

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mikkon/tiktok-oauth-webhook/internal/db/models"
	apperrors "github.com/mikkon/tiktok-oauth-webhook/internal/errors"
	"github.com/mikkon/tiktok-oauth-webhook/internal/tiktok"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	database, err := InitDB(filepath.Join(t.TempDir(), "tokens.db"), false)
	require.NoError(t, err)
	return NewStore(database, zerolog.Nop()), database
}

func tokenResult(openID, accessToken string) *tiktok.TokenResult {
	return &tiktok.TokenResult{
		AccessToken:  accessToken,
		RefreshToken: "refresh-" + accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    86400,
		OpenID:       openID,
		Scope:        "user.info.basic",
	}
}

func TestSave_SingleActiveInvariant(t *testing.T) {
	store, database := newTestStore(t)

	for _, token := range []string{"tok_1", "tok_2", "tok_3"} {
		_, err := store.Save(tokenResult("u1", token), nil)
		require.NoError(t, err)
	}

	var active []models.Token
	require.NoError(t, database.Where("open_id = ? AND is_active = ?", "u1", true).Find(&active).Error)
	require.Len(t, active, 1)
	require.Equal(t, "tok_3", active[0].AccessToken)

	var total int64
	require.NoError(t, database.Model(&models.Token{}).Where("open_id = ?", "u1").Count(&total).Error)
	require.EqualValues(t, 3, total)
}

func TestSave_DoesNotTouchOtherIdentities(t *testing.T) {
	store, database := newTestStore(t)

	_, err := store.Save(tokenResult("u1", "tok_a"), nil)
	require.NoError(t, err)
	_, err = store.Save(tokenResult("u2", "tok_b"), nil)
	require.NoError(t, err)

	var active int64
	require.NoError(t, database.Model(&models.Token{}).Where("is_active = ?", true).Count(&active).Error)
	require.EqualValues(t, 2, active)
}

func TestSave_WithEnrichment(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.Save(tokenResult("u1", "tok_a"), &tiktok.CreatorInfo{
		Nickname:         "Mika",
		AvatarURL:        "https://cdn.example/avatar.jpg",
		Username:         "mika.off",
		DuetDisabled:     true,
		MaxVideoDuration: 300,
	})
	require.NoError(t, err)
	require.Equal(t, "Mika", record.Nickname)
	require.True(t, record.DuetDisabled)

	profile, err := store.ActiveProfile()
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.Equal(t, "https://cdn.example/avatar.jpg", profile.AvatarURL)
}

func TestSave_WithoutEnrichmentStillActive(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Save(tokenResult("u1", "tok_a"), nil)
	require.NoError(t, err)

	profile, err := store.ActiveProfile()
	require.NoError(t, err)
	require.NotNil(t, profile)
	require.Equal(t, "u1", profile.OpenID)
	require.Empty(t, profile.Nickname)
	require.Empty(t, profile.AvatarURL)
}

func TestActiveProfile_NoneActive(t *testing.T) {
	store, _ := newTestStore(t)

	profile, err := store.ActiveProfile()
	require.NoError(t, err)
	require.Nil(t, profile)
}

func TestDeactivateAll_Idempotent(t *testing.T) {
	store, database := newTestStore(t)

	_, err := store.Save(tokenResult("u1", "tok_a"), nil)
	require.NoError(t, err)
	_, err = store.Save(tokenResult("u2", "tok_b"), nil)
	require.NoError(t, err)

	count, err := store.DeactivateAll()
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	count, err = store.DeactivateAll()
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	var active int64
	require.NoError(t, database.Model(&models.Token{}).Where("is_active = ?", true).Count(&active).Error)
	require.EqualValues(t, 0, active)
}

func TestHealth(t *testing.T) {
	store, database := newTestStore(t)

	count, err := store.Health()
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	_, err = store.Save(tokenResult("u1", "tok_a"), nil)
	require.NoError(t, err)

	count, err = store.Health()
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	count, err = store.Health()
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.ErrStorageUnavailable))
	require.EqualValues(t, -1, count)
}

func TestSave_ClosedDatabase(t *testing.T) {
	store, database := newTestStore(t)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = store.Save(tokenResult("u1", "tok_a"), nil)
	require.Error(t, err)
	require.True(t, apperrors.Is(err, apperrors.ErrPersistenceFailed))
}
