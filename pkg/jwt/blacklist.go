package jwt

import (
	"context"
	"errors"
	"time"

	"newsboard/pkg/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blacklist remembers revoked refresh token ids until they would have
// expired anyway.
type Blacklist interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RedisBlacklist struct {
	client *redis.Client
}

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{client: client}
}

func blacklistKey(jti string) string {
	return "jwt:blacklist:" + jti
}

func (b *RedisBlacklist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return b.client.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type DBBlacklist struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDBBlacklist(db *gorm.DB) *DBBlacklist {
	return &DBBlacklist{db: db, now: time.Now}
}

func (b *DBBlacklist) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	row := &models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (b *DBBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var row models.RevokedToken
	err := b.db.WithContext(ctx).Where("jti = ?", jti).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return row.ExpiresAt.After(b.now()), nil
}

// Purge drops entries whose tokens have expired.
func (b *DBBlacklist) Purge(ctx context.Context) (int64, error) {
	res := b.db.WithContext(ctx).Where("expires_at <= ?", b.now()).Delete(&models.RevokedToken{})
	return res.RowsAffected, res.Error
}
