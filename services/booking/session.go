package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"staycation/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	flowKeyPrefix = "bookingFlow:"
	// SessionTTL is how long an untouched booking session survives.
	SessionTTL = 10 * time.Minute
)

var (
	ErrSessionNotFound  = errors.New("booking session not found or expired")
	ErrSessionForbidden = errors.New("booking session belongs to another user")
)

// FlowStore keeps booking flows between requests.
type FlowStore interface {
	Save(ctx context.Context, flow models.BookingFlow) error
	Load(ctx context.Context, sessionID string) (models.BookingFlow, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisFlowStore stores flows as JSON under bookingFlow:<sessionID>.
type RedisFlowStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisFlowStore(client *redis.Client) *RedisFlowStore {
	return &RedisFlowStore{Client: client, TTL: SessionTTL}
}

func (s *RedisFlowStore) Save(ctx context.Context, flow models.BookingFlow) error {
	data, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, flowKeyPrefix+flow.SessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisFlowStore) Load(ctx context.Context, sessionID string) (models.BookingFlow, error) {
	data, err := s.Client.Get(ctx, flowKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return models.BookingFlow{}, ErrSessionNotFound
	}
	if err != nil {
		return models.BookingFlow{}, fmt.Errorf("failed to load booking session: %w", err)
	}
	var flow models.BookingFlow
	if err := json.Unmarshal([]byte(data), &flow); err != nil {
		return models.BookingFlow{}, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return flow, nil
}

func (s *RedisFlowStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, flowKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) load(ctx context.Context, userID, sessionID string) (models.BookingFlow, error) {
	flow, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return models.BookingFlow{}, err
	}
	if flow.UserID != userID {
		return models.BookingFlow{}, ErrSessionForbidden
	}
	return flow, nil
}

// InitiateSession opens an idle booking flow for a listing.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context, userID, listingID string) (*models.BookingFlow, error) {
	listing, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if listing == nil {
		return nil, NewNotFoundError("Listing not found")
	}

	flow := NewFlow(uuid.New().String(), userID, listing.ID)
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}
	return &flow, nil
}

// UpdateSession applies a selection change and re-validates the flow against
// the listing's current reservations.
func (s *DefaultBookingSessionService) UpdateSession(ctx context.Context, userID, sessionID string, sel models.FlowSelection) (*models.BookingFlow, error) {
	flow, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	flow, err = ApplySelection(flow, sel)
	if err != nil {
		return nil, err
	}

	listing, err := s.Listings.GetByID(ctx, flow.ListingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}
	if listing == nil {
		return nil, NewNotFoundError("Listing not found")
	}

	var existing []models.Reservation
	if _, _, dayErr := selectionDays(Selection(flow)); dayErr == nil {
		existing, err = conflictsFor(ctx, s.Reservations, listing.ID, Selection(flow))
		if err != nil {
			return nil, fmt.Errorf("failed to load reservations: %w", err)
		}
	}
	flow, err = Validate(flow, *listing, existing, s.Rules)
	if err != nil {
		return nil, err
	}

	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, err
	}
	return &flow, nil
}

// ConfirmSession submits a validated flow as a reservation. A rejected
// submission leaves the flow Failed so the guest can change the selection
// and try again.
func (s *DefaultBookingSessionService) ConfirmSession(ctx context.Context, userID, sessionID string) (*models.BookingFlow, *models.ListingWithReservations, error) {
	flow, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	flow, err = BeginSubmit(flow)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, nil, err
	}

	reservation, result, submitErr := s.Creator.CreateReservation(ctx, userID, RequestFromFlow(flow))
	reservationID := ""
	if reservation != nil {
		reservationID = reservation.ID
	}
	flow, err = CompleteSubmit(flow, reservationID, submitErr)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Store.Save(ctx, flow); err != nil {
		return nil, nil, err
	}
	if submitErr != nil {
		return &flow, nil, submitErr
	}
	return &flow, result, nil
}

// CancelSession drops a booking flow.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, userID, sessionID string) error {
	if _, err := s.load(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}
