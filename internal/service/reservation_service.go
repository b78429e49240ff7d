package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"das-foods/internal/domain"

	"github.com/rs/zerolog/log"
)

type ReservationRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Guests int    `json:"guests"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

type ReservationService struct {
	repo      ReservationRepository
	publisher EventPublisher
	maxGuests int
}

func NewReservationService(repo ReservationRepository, publisher EventPublisher, maxGuests int) *ReservationService {
	return &ReservationService{repo: repo, publisher: publisher, maxGuests: maxGuests}
}

// Request records a Pending booking. Slots are not checked for conflicts.
func (s *ReservationService) Request(ctx context.Context, req ReservationRequest) (*domain.Reservation, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}

	res := domain.Reservation{
		Name:   req.Name,
		Phone:  req.Phone,
		Guests: req.Guests,
		Date:   req.Date,
		Time:   req.Time,
		Status: domain.ReservationPending,
	}
	if err := s.repo.CreateReservation(&res); err != nil {
		return nil, err
	}

	log.Info().Str("reservation_id", res.ID).Int("guests", res.Guests).Str("date", res.Date).Msg("reservation requested")

	if s.publisher != nil {
		if err := s.publisher.PublishEvent(ctx, domain.KafkaMessage{
			Type:          domain.EventReservationRequested,
			ReservationID: res.ID,
			Status:        string(res.Status),
			Timestamp:     time.Now().UTC(),
		}); err != nil {
			log.Warn().Err(err).Str("reservation_id", res.ID).Msg("failed to publish event")
		}
	}

	return &res, nil
}

// SetStatus confirms or cancels a Pending reservation. Repeating the current
// status is a no-op.
func (s *ReservationService) SetStatus(id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	if status != domain.ReservationConfirmed && status != domain.ReservationCancelled {
		return nil, fmt.Errorf("%w: reservation status must be Confirmed or Cancelled", ErrValidation)
	}

	res, err := s.repo.GetReservation(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if res.Status == status {
		return res, nil
	}
	if res.Status != domain.ReservationPending {
		return nil, fmt.Errorf("%w: reservation is already %s", ErrInvalidTransition, res.Status)
	}

	affected, err := s.repo.UpdateStatusGuard(res.ID, domain.ReservationPending, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: reservation %s changed concurrently", ErrInvalidTransition, res.ID)
	}

	res.Status = status
	return res, nil
}

func (s *ReservationService) Find(id string) (*domain.Reservation, error) {
	return s.repo.GetReservation(strings.TrimSpace(id))
}

func (s *ReservationService) List() []domain.Reservation {
	return s.repo.ListReservations()
}

func (s *ReservationService) validate(req *ReservationRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)

	switch {
	case req.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case req.Phone == "":
		return fmt.Errorf("%w: phone is required", ErrValidation)
	case req.Guests < 1 || req.Guests > s.maxGuests:
		return fmt.Errorf("%w: guests must be between 1 and %d", ErrValidation, s.maxGuests)
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", ErrValidation)
	}
	return nil
}
