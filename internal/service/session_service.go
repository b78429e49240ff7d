package service

import (
	"context"
	"errors"
	"time"

	"das-foods/internal/domain"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// unknownUserHash keeps the comparison cost the same for unknown usernames.
var unknownUserHash, _ = bcrypt.GenerateFromPassword([]byte("unknown-user"), bcrypt.DefaultCost)

type SessionService struct {
	repo    SessionRepository
	carts   CartRepository
	idleTTL time.Duration
}

// NewSessionService expires sessions idle for longer than idleTTL when Sweep
// runs; a zero idleTTL disables expiry.
func NewSessionService(repo SessionRepository, carts CartRepository, idleTTL time.Duration) *SessionService {
	return &SessionService{repo: repo, carts: carts, idleTTL: idleTTL}
}

func (s *SessionService) Start() domain.Session {
	return s.repo.CreateSession()
}

// Resolve returns the session for token and its signed-in account, if any.
func (s *SessionService) Resolve(token string) (*domain.Session, *domain.Account, bool) {
	if token == "" {
		return nil, nil, false
	}
	sess, ok := s.repo.GetSession(token)
	if !ok {
		return nil, nil, false
	}
	if sess.AccountID == 0 {
		return sess, nil, true
	}
	account, ok := s.repo.GetAccount(sess.AccountID)
	if !ok {
		return sess, nil, true
	}
	return sess, account, true
}

// Login signs the session in and swaps it for a new token, carrying the cart
// over. The caller must hand the returned token back to the browser.
func (s *SessionService) Login(token, username, password string) (*domain.Account, string, error) {
	if _, ok := s.repo.GetSession(token); !ok {
		return nil, "", ErrSessionNotFound
	}

	account, ok := s.repo.FindAccount(username)
	if !ok {
		_ = bcrypt.CompareHashAndPassword(unknownUserHash, []byte(password))
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	rotated, err := s.repo.RotateSession(token, account.ID)
	if err != nil {
		return nil, "", err
	}
	if s.carts != nil {
		s.carts.Transfer(token, rotated.Token)
	}
	return account, rotated.Token, nil
}

func (s *SessionService) Logout(token string) error {
	if token == "" {
		return nil
	}
	err := s.repo.SetSessionAccount(token, 0)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	return err
}

// Sweep drops sessions idle past the TTL together with their carts.
func (s *SessionService) Sweep(now time.Time) int {
	if s.idleTTL <= 0 {
		return 0
	}
	expired := s.repo.ExpireIdle(now.Add(-s.idleTTL))
	if s.carts != nil {
		for _, token := range expired {
			s.carts.Clear(token)
		}
	}
	return len(expired)
}

// StartJanitor sweeps idle sessions every interval until ctx is cancelled.
func (s *SessionService) StartJanitor(ctx context.Context, interval time.Duration) {
	if s.idleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.Sweep(now); n > 0 {
				log.Debug().Int("expired", n).Msg("swept idle sessions")
			}
		}
	}
}
