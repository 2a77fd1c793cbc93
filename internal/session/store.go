package session

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kraviona/seller-console/internal/models"
)

// CookieName is the browser cookie carrying the signed session id.
const CookieName = "kraviona_session"

const sessionTTL = 7 * 24 * time.Hour

// Record is one operator session: profile and API token live together in a
// single row so a restart cannot leave a stale profile behind a dead token.
type Record struct {
	SID       string `gorm:"column:sid;primaryKey"`
	Name      string
	Email     string
	Token     string `gorm:"not null"`
	ExpiresAt int64  `gorm:"not null"`
}

type Store struct {
	db     *gorm.DB
	secret []byte
}

func Open(path string, secret []byte) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	return &Store{db: db, secret: secret}, nil
}

// Create persists a new session and returns the cookie value for it.
func (s *Store) Create(profile models.Profile, token string) (string, error) {
	exp := time.Now().Add(sessionTTL)
	rec := Record{
		SID:       uuid.NewString(),
		Name:      profile.Name,
		Email:     profile.Email,
		Token:     token,
		ExpiresAt: exp.Unix(),
	}
	if err := s.db.Create(&rec).Error; err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	claims := jwt.MapClaims{
		"sid": rec.SID,
		"exp": exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

// Token returns the API token for the session cookie, or false when the
// cookie is missing, tampered with, or the session has expired.
func (s *Store) Token(cookie string) (string, bool) {
	rec, ok := s.lookup(cookie)
	if !ok {
		return "", false
	}
	return rec.Token, true
}

// Profile never fails: any unreadable session falls back to the default
// display record.
func (s *Store) Profile(cookie string) models.Profile {
	rec, ok := s.lookup(cookie)
	if !ok {
		return models.DefaultProfile()
	}
	p := models.Profile{Name: rec.Name, Email: rec.Email}
	if p.Name == "" {
		p.Name = models.DefaultProfile().Name
	}
	if p.Email == "" {
		p.Email = models.DefaultProfile().Email
	}
	return p
}

// Clear removes the session record. A later Token call reports absent.
func (s *Store) Clear(cookie string) error {
	sid, ok := s.sid(cookie)
	if !ok {
		return nil
	}
	if err := s.db.Delete(&Record{}, "sid = ?", sid).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Store) lookup(cookie string) (Record, bool) {
	sid, ok := s.sid(cookie)
	if !ok {
		return Record{}, false
	}
	var rec Record
	if err := s.db.First(&rec, "sid = ?", sid).Error; err != nil {
		// not found and read errors alike read as an absent session
		return Record{}, false
	}
	if time.Now().Unix() > rec.ExpiresAt {
		return Record{}, false
	}
	return rec, true
}

func (s *Store) sid(cookie string) (string, bool) {
	if cookie == "" {
		return "", false
	}
	t, err := jwt.Parse(cookie, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return "", false
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", false
	}
	return sid, true
}
