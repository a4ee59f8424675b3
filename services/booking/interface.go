package booking

import (
	"shareyourspace/models"
	"shareyourspace/services/catalog"
	"shareyourspace/services/pricing"

	"github.com/go-redis/redis/v8"
)

// SessionService manages the quote-then-confirm booking flow. A session is
// a cached quote; confirming one yields an acknowledgment summary only, no
// order is persisted.
type SessionService interface {
	Initiate(req models.QuoteRequest) (*models.BookingSession, error)
	Confirm(sessionID string) (*models.BookingSummary, error)
	Cancel(sessionID string) error
}

// DefaultSessionService implements SessionService over the session cache.
// Range quotes carry the marketplace service fee, fixed-duration quotes the
// widget fee, so the two engines are wired separately.
type DefaultSessionService struct {
	Catalog      catalog.Catalog
	RangeEngine  pricing.Engine
	WidgetEngine pricing.Engine
	Cache        *redis.Client
}
