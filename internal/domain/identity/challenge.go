package identity

import (
	"crypto/rand"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
)

const challengeCodeLength = 4

// Challenge is the pre-login verification token. It replaces the old
// ambient session code: the caller holds the token id and must echo the
// code back on the login attempt.
type Challenge struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ChallengeStore keeps pending challenges in memory. Tokens are single
// use: any redeem attempt, matched or not, consumes the token.
type ChallengeStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[string]Challenge
	now     func() time.Time
}

func NewChallengeStore(ttl time.Duration) *ChallengeStore {
	return &ChallengeStore{
		ttl:     ttl,
		pending: make(map[string]Challenge),
		now:     time.Now,
	}
}

// GenerateCode draws each digit independently from crypto/rand; leading
// zeros are allowed.
func GenerateCode() (string, error) {
	digits := make([]byte, challengeCodeLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// Issue creates a fresh challenge bound to the declared role. Expired
// leftovers are swept opportunistically.
func (s *ChallengeStore) Issue(role string) (Challenge, error) {
	code, err := GenerateCode()
	if err != nil {
		return Challenge{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, ch := range s.pending {
		if now.After(ch.ExpiresAt) {
			delete(s.pending, id)
		}
	}

	ch := Challenge{
		ID:        uuid.NewString(),
		Code:      code,
		Role:      role,
		ExpiresAt: now.Add(s.ttl),
	}
	s.pending[ch.ID] = ch
	return ch, nil
}

// Redeem consumes the challenge and returns its bound role. Unknown,
// expired and mismatched codes all fail identically with
// ErrInvalidChallenge so a failed code leaks nothing further.
func (s *ChallengeStore) Redeem(id, code string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.pending[id]
	if ok {
		delete(s.pending, id)
	}
	if !ok || s.now().After(ch.ExpiresAt) || ch.Code != code {
		return "", ErrInvalidChallenge
	}
	return ch.Role, nil
}
