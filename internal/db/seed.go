package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-site/internal/auth"
	"github.com/BruksfildServices01/barbershop-site/internal/models"
)

// DefaultSettings are inserted once; existing values are never overwritten.
var DefaultSettings = []models.Setting{
	{Key: "address", Value: "Ташкент, Узбекистан"},
	{Key: "phone", Value: "+998 (XX) XXX-XX-XX"},
	{Key: "hours", Value: "Пн - Вс: 10:00 - 20:00"},
	{Key: "instagram", Value: ""},
	{Key: "telegram", Value: ""},
	{Key: "telegram_token", Value: ""},
	{Key: "telegram_chat_id", Value: ""},
	{Key: "twilio_account_sid", Value: ""},
	{Key: "twilio_auth_token", Value: ""},
	{Key: "twilio_from", Value: ""},
	{Key: "twilio_to", Value: ""},
}

type SeedOptions struct {
	AdminUsername string
	AdminPassword string
}

// Seed writes default settings and, when no administrator exists yet, the
// bootstrap admin account. An empty AdminPassword yields a generated one
// which is logged exactly once.
func Seed(ctx context.Context, db *gorm.DB, opts SeedOptions) error {
	for _, s := range DefaultSettings {
		row := s
		if err := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "key"}}, DoNothing: true}).
			Create(&row).Error; err != nil {
			return fmt.Errorf("seed setting %s: %w", s.Key, err)
		}
	}

	var admins int64
	if err := db.WithContext(ctx).Model(&models.AdminUser{}).Count(&admins).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins > 0 {
		return nil
	}

	username := opts.AdminUsername
	if username == "" {
		username = "admin"
	}

	password := opts.AdminPassword
	generated := password == ""
	if generated {
		password = generatePassword()
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	admin := models.AdminUser{Username: username, PasswordHash: hash}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	if generated {
		log.Warn().
			Str("username", username).
			Str("password", password).
			Msg("bootstrap admin created with generated password, shown only once; set ADMIN_PASSWORD before the first start to choose it")
	} else {
		log.Info().Str("username", username).Msg("bootstrap admin created")
	}
	return nil
}

// generatePassword returns 32 hex characters from a random (v4) UUID,
// 122 bits read from crypto/rand.
func generatePassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
