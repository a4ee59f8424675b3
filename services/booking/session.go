package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shareyourspace/models"
	"shareyourspace/services/pricing"
	"shareyourspace/utils"

	"github.com/google/uuid"
)

// ErrListingNotFound signals an unknown listing id.
var ErrListingNotFound = errors.New("booking: listing not found")

// ErrSessionNotFound signals an unknown or expired booking session.
var ErrSessionNotFound = errors.New("booking: session not found or expired")

// Initiate prices the request, caches the resulting quote session under a
// fresh UUID and returns it. The session expires after utils.SessionCacheTTL.
func (s *DefaultSessionService) Initiate(req models.QuoteRequest) (*models.BookingSession, error) {
	listing, ok := s.Catalog.GetByID(req.ListingID)
	if !ok {
		return nil, ErrListingNotFound
	}

	unit, err := resolveUnit(listing, req)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.quote(listing, unit, &req)
	if err != nil {
		return nil, err
	}

	corporatePct := pricing.ResolveCorporateDiscount(listing, req.CorporateDiscount, req.CrossBenefit)
	session := &models.BookingSession{
		ID:               uuid.New().String(),
		ListingID:        listing.ID,
		UnitID:           unit.ID,
		Start:            req.Start,
		End:              req.End,
		BookingUnit:      breakdown.Unit,
		Quantity:         breakdown.Quantity,
		PartySize:        req.PartySize,
		CorporateCovered: corporatePct > 0,
		Breakdown:        *breakdown,
		CreatedAt:        time.Now().UTC(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.Cache.Set(ctx, utils.SessionCachePrefix+session.ID, data, utils.SessionCacheTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to cache booking session: %w", err)
	}
	return session, nil
}

// Confirm turns a cached session into the user-facing acknowledgment and
// drops the session.
func (s *DefaultSessionService) Confirm(sessionID string) (*models.BookingSummary, error) {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}

	summary := &models.BookingSummary{
		BookingID:        uuid.New().String(),
		ListingID:        session.ListingID,
		UnitID:           session.UnitID,
		Start:            session.Start,
		End:              session.End,
		Total:            session.Breakdown.Total,
		CorporateCovered: session.CorporateCovered,
		Status:           "Confirmed",
		CreatedAt:        time.Now().UTC(),
	}

	s.Cache.Del(ctx, utils.SessionCachePrefix+sessionID)
	return summary, nil
}

// Cancel drops a cached session. Cancelling an unknown session is not an
// error.
func (s *DefaultSessionService) Cancel(sessionID string) error {
	return s.Cache.Del(context.Background(), utils.SessionCachePrefix+sessionID).Err()
}

func (s *DefaultSessionService) quote(listing *models.Listing, unit *models.Unit, req *models.QuoteRequest) (*models.PricingBreakdown, error) {
	corporatePct := pricing.ResolveCorporateDiscount(listing, req.CorporateDiscount, req.CrossBenefit)

	if req.Preset != "" {
		preset, err := pricing.LookupPreset(req.Preset)
		if err != nil {
			return nil, err
		}
		req.BookingUnit = preset.Unit
		req.Quantity = preset.Quantity
	}
	if req.BookingUnit != "" {
		return s.WidgetEngine.QuoteFixed(listing, unit, req.BookingUnit, req.Quantity, req.PartySize, corporatePct)
	}
	if req.Start == nil || req.End == nil {
		return nil, pricing.ErrInvalidRange
	}
	return s.RangeEngine.QuoteRange(listing, unit, *req.Start, *req.End, req.PartySize, corporatePct)
}

func resolveUnit(listing *models.Listing, req models.QuoteRequest) (*models.Unit, error) {
	if req.UnitID != "" {
		if unit := listing.UnitByID(req.UnitID); unit != nil {
			return unit, nil
		}
		return nil, pricing.ErrNoAvailableUnit
	}
	return pricing.SelectUnit(listing, req.SpaceType, req.PartySize)
}
