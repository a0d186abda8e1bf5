package auth

import (
	"context"
	"sync"
	"time"

	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/identity"
	"lounge/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// maxTrackedIdentities bounds the limiter table; it is reset when full.
const maxTrackedIdentities = 10000

// throttledAuthService limits password attempts per identity.
type throttledAuthService struct {
	service.AuthService

	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewThrottledAuthService wraps next so each identity gets perMinute
// password attempts with the given burst.
func NewThrottledAuthService(next service.AuthService, perMinute float64, burst int) service.AuthService {
	if perMinute <= 0 {
		return next
	}
	if burst <= 0 {
		burst = 1
	}

	return &throttledAuthService{
		AuthService: next,
		limit:       rate.Every(time.Duration(float64(time.Minute) / perMinute)),
		burst:       burst,
		limiters:    make(map[string]*rate.Limiter),
	}
}

func (s *throttledAuthService) allow(email string) error {
	key := identity.Normalize(email)

	s.mu.Lock()
	limiter, ok := s.limiters[key]
	if !ok {
		if len(s.limiters) >= maxTrackedIdentities {
			s.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = limiter
	}
	s.mu.Unlock()

	if !limiter.Allow() {
		return errors.WithStack(domainerrors.ErrTooManyAttempts)
	}

	return nil
}

// SignIn is throttled per identity.
func (s *throttledAuthService) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	if err := s.allow(email); err != nil {
		return nil, err
	}

	return s.AuthService.SignIn(ctx, email, password)
}

// Reauthenticate is throttled per identity.
func (s *throttledAuthService) Reauthenticate(ctx context.Context, email, password string) error {
	if err := s.allow(email); err != nil {
		return err
	}

	return s.AuthService.Reauthenticate(ctx, email, password)
}
