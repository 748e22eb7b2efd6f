package connection

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/buffapp/adsync/internal/models"
	"github.com/buffapp/adsync/internal/platform/amazon/adsapi"
	"github.com/buffapp/adsync/pkg/logctx"
	"github.com/buffapp/adsync/pkg/tokencrypt"
	"github.com/buffapp/adsync/pkg/tool"
)

var (
	// ErrNotFound means no connection exists for the requested profile or user.
	ErrNotFound = errors.New("connection not found")
	// ErrCredential means the stored refresh token could not be turned into an
	// access token. Remaining work for the profile should be skipped.
	ErrCredential = errors.New("credential refresh failed")
	// ErrInvalidState means the OAuth callback state is unknown or already used.
	ErrInvalidState = errors.New("invalid oauth state")
)

// Service owns connection rows and resolves credentials for them.
type Service struct {
	db     *gorm.DB
	api    *adsapi.Client
	cipher *tokencrypt.Cipher
	log    *zap.SugaredLogger
}

func NewService(db *gorm.DB, api *adsapi.Client, cipher *tokencrypt.Cipher, log *zap.SugaredLogger) *Service {
	return &Service{db: db, api: api, cipher: cipher, log: log}
}

// GetByProfileID loads one connection; ErrNotFound when absent.
func (s *Service) GetByProfileID(ctx context.Context, profileID string) (*models.Connection, error) {
	var conn models.Connection
	err := s.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile %s", ErrNotFound, profileID)
		}
		return nil, fmt.Errorf("failed to load connection: %w", err)
	}
	return &conn, nil
}

// ListByUserID returns all connections belonging to a user.
func (s *Service) ListByUserID(ctx context.Context, userID string) ([]*models.Connection, error) {
	var conns []*models.Connection
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&conns).Error; err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return conns, nil
}

// AccessToken decrypts the connection's refresh token and exchanges it for a
// short-lived access token.
func (s *Service) AccessToken(ctx context.Context, conn *models.Connection) (string, error) {
	refreshToken, err := s.cipher.Decrypt(conn.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCredential, err)
	}
	tok, err := s.api.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCredential, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token in response", ErrCredential)
	}
	return tok.AccessToken, nil
}

// Touch bumps the connection's updated_at to record a completed sync.
func (s *Service) Touch(ctx context.Context, profileID string) error {
	err := s.db.WithContext(ctx).Model(&models.Connection{}).
		Where("profile_id = ?", profileID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("failed to touch connection: %w", err)
	}
	return nil
}

// StartAuth persists a CSRF state and returns the authorization URL the user
// must visit.
func (s *Service) StartAuth(ctx context.Context, userID string) (authURL, state string, err error) {
	state = tool.GenerateUUIDV7()
	row := &models.OAuthState{ID: tool.GenerateUUIDV7(), State: state, UserID: userID}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return "", "", fmt.Errorf("failed to save oauth state: %w", err)
	}
	return s.api.AuthURL(state), state, nil
}

// consumeState validates a callback state and deletes it, returning the user
// it was issued for. States are single-use.
func (s *Service) consumeState(ctx context.Context, state string) (string, error) {
	var row models.OAuthState
	err := s.db.WithContext(ctx).Where("state = ?", state).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidState
		}
		return "", fmt.Errorf("failed to load oauth state: %w", err)
	}
	if err := s.db.WithContext(ctx).Delete(&row).Error; err != nil {
		return "", fmt.Errorf("failed to delete oauth state: %w", err)
	}
	return row.UserID, nil
}

// HandleCallback completes the OAuth flow: validates state, exchanges the
// authorization code, then saves one connection per advertiser profile with
// the refresh token stored encrypted.
func (s *Service) HandleCallback(ctx context.Context, code, state string) ([]*models.Connection, error) {
	userID, err := s.consumeState(ctx, state)
	if err != nil {
		return nil, err
	}

	tok, err := s.api.ExchangeAuthorizationCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	profiles, err := s.api.ListProfiles(ctx, tok.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	encrypted, err := s.cipher.Encrypt(tok.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	log := logctx.FromCtx(ctx, s.log)
	saved := make([]*models.Connection, 0, len(profiles))
	for _, p := range profiles {
		conn := &models.Connection{
			ID:            tool.GenerateUUIDV7(),
			UserID:        userID,
			ProfileID:     strconv.FormatInt(p.ProfileID, 10),
			CountryCode:   p.CountryCode,
			CurrencyCode:  p.CurrencyCode,
			MarketplaceID: p.AccountInfo.MarketplaceStringID,
			AccountName:   p.AccountInfo.Name,
			AccountType:   p.AccountInfo.Type,
			RefreshToken:  encrypted,
		}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "profile_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "country_code", "currency_code", "marketplace_id",
				"account_name", "account_type", "refresh_token", "updated_at",
			}),
		}).Create(conn).Error
		if err != nil {
			log.Errorw("failed to save connection", "profile_id", conn.ProfileID, "err", err)
			continue
		}
		saved = append(saved, conn)
	}
	log.Infow("oauth callback handled", "user_id", userID, "profiles", len(profiles), "saved", len(saved))
	return saved, nil
}

// Delete removes one connection by profile id.
func (s *Service) Delete(ctx context.Context, profileID string) error {
	res := s.db.WithContext(ctx).Where("profile_id = ?", profileID).Delete(&models.Connection{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete connection: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: profile %s", ErrNotFound, profileID)
	}
	return nil
}
