package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/DhruvJoshi-17/pitchbook/utils"
)

var (
	ErrOTPNotRequested   = errors.New("otp not requested or expired")
	ErrOTPExpired        = errors.New("otp expired")
	ErrOTPInvalid        = errors.New("invalid otp")
	ErrOTPTooManyRetries = errors.New("too many incorrect attempts, request a new otp")
)

type otpEntry struct {
	codeHash  string
	expiresAt time.Time
	attempts  int
}

// OTPStore holds one-time login codes keyed by phone number. Entries are
// single-use and evicted on TTL; a verified or expired code can never be
// replayed. Codes are stored bcrypt-hashed.
type OTPStore struct {
	mu          sync.Mutex
	entries     map[string]otpEntry
	ttl         time.Duration
	maxAttempts int
	stop        chan struct{}
}

func NewOTPStore(ttl time.Duration, maxAttempts int) *OTPStore {
	s := &OTPStore{
		entries:     make(map[string]otpEntry),
		ttl:         ttl,
		maxAttempts: maxAttempts,
		stop:        make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Put stores a fresh code for the phone, replacing any outstanding one.
func (s *OTPStore) Put(phone, code string) error {
	hash, err := utils.HashSecret(code)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = otpEntry{codeHash: hash, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

// Verify consumes the code for the phone. On success the entry is deleted so
// the code cannot be reused.
func (s *OTPStore) Verify(phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[phone]
	if !ok {
		return ErrOTPNotRequested
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, phone)
		return ErrOTPExpired
	}
	if !utils.CheckSecret(entry.codeHash, code) {
		entry.attempts++
		if entry.attempts >= s.maxAttempts {
			delete(s.entries, phone)
			return ErrOTPTooManyRetries
		}
		s.entries[phone] = entry
		return ErrOTPInvalid
	}

	delete(s.entries, phone)
	return nil
}

// Close stops the eviction goroutine.
func (s *OTPStore) Close() {
	close(s.stop)
}

func (s *OTPStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for phone, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, phone)
				}
			}
			s.mu.Unlock()
		}
	}
}
