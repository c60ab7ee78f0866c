package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "villabook/database/repository/booking"
	reviewRepo "villabook/database/repository/review"
	userRepo "villabook/database/repository/user"
	"villabook/models"
	"villabook/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService on top of the pure
// lifecycle engine: it loads snapshots, runs the validations, persists
// the resulting requests and notifies the other party.
type DefaultBookingService struct {
	Repo            bookingRepo.BookingRepository
	ReviewRepo      reviewRepo.ReviewRepository
	UserRepo        userRepo.UserRepository
	NotificationSvc notification.NotificationService
	Stats           StatsInvalidator
	Logger          *zap.Logger
}

func (s *DefaultBookingService) load(bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NewLifecycleError(CodeNotFound, fmt.Sprintf("booking %s not found", bookingID))
	}
	return b, nil
}

// GetBookingDetail assembles the booking detail view for a viewer.
func (s *DefaultBookingService) GetBookingDetail(ctx context.Context, bookingID, viewerID, viewerRole string) (*BookingDetail, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, err
	}

	var counterpart *models.User
	if otherID := Counterpart(*b, viewerID); otherID != "" {
		counterpart, err = s.UserRepo.GetByID(otherID)
		if err != nil {
			// The detail view still renders without a counterpart
			// profile; contact is simply not offered.
			s.Logger.Warn("failed to resolve counterpart profile",
				zap.String("bookingID", bookingID), zap.Error(err))
			counterpart = nil
		}
	}

	existing, err := s.ReviewRepo.GetByBookingAndReviewer(bookingID, viewerID)
	if err != nil {
		return nil, err
	}

	perms := ComputePermissions(*b, viewerID, viewerRole, existing, counterpart, time.Now())
	return &BookingDetail{
		Booking:     *b,
		Permissions: perms,
		Counterpart: counterpart,
		OwnReview:   existing,
	}, nil
}

// ListForGuest returns the guest's bookings, newest first.
func (s *DefaultBookingService) ListForGuest(ctx context.Context, guestUserID string) ([]models.Booking, error) {
	return s.Repo.GetByGuest(guestUserID)
}

// ListForHost returns the host's bookings, newest first.
func (s *DefaultBookingService) ListForHost(ctx context.Context, hostUserID string) ([]models.Booking, error) {
	return s.Repo.GetByHost(hostUserID)
}

// transitionPermitted gates a requested status on the viewer's
// permission set.
func transitionPermitted(perms models.PermissionSet, requested string) bool {
	switch requested {
	case models.BookingConfirmed:
		return perms.CanApprove
	case models.BookingRejected:
		return perms.CanReject
	case models.BookingCancelled:
		return perms.CanCancel
	default:
		return false
	}
}

// ApplyTransition validates and persists a status change requested by
// the viewer, then notifies the other party.
func (s *DefaultBookingService) ApplyTransition(ctx context.Context, bookingID, viewerID, viewerRole, requested, reason string) (*models.Booking, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, err
	}

	perms := ComputePermissions(*b, viewerID, viewerRole, nil, nil, time.Now())
	if !transitionPermitted(perms, requested) {
		return nil, NewLifecycleError(CodeNotAllowed,
			fmt.Sprintf("viewer may not move booking %s to %q", bookingID, requested))
	}

	req, err := ValidateTransition(*b, requested, reason)
	if err != nil {
		return nil, err
	}

	applied, err := s.Repo.ApplyTransition(req, []string{b.Status})
	if err != nil {
		return nil, err
	}
	if !applied {
		// A racing request already moved the booking.
		return nil, NewLifecycleError(CodeConflict,
			fmt.Sprintf("booking %s was updated by another request", bookingID))
	}

	b.Status = req.Status
	b.CancellationReason = req.CancellationReason

	s.notifyTransition(ctx, *b, viewerID)

	if s.Stats != nil {
		if err := s.Stats.InvalidateStats(ctx, b.HostUserID); err != nil {
			s.Logger.Warn("failed to invalidate host stats", zap.String("hostID", b.HostUserID), zap.Error(err))
		}
	}

	s.Logger.Info("booking transition applied",
		zap.String("bookingID", bookingID),
		zap.String("status", req.Status),
		zap.String("viewerID", viewerID))
	return b, nil
}

func (s *DefaultBookingService) notifyTransition(ctx context.Context, b models.Booking, actorID string) {
	otherID := Counterpart(b, actorID)
	if otherID == "" {
		return
	}

	var notifType, title, body string
	switch b.Status {
	case models.BookingConfirmed:
		notifType = models.NotifBookingConfirmed
		title = "Booking confirmed"
		body = "Your booking request was approved by the host."
	case models.BookingRejected:
		notifType = models.NotifBookingRejected
		title = "Booking rejected"
		body = fmt.Sprintf("Your booking request was rejected: %s", b.CancellationReason)
	case models.BookingCancelled:
		notifType = models.NotifBookingCancelled
		title = "Booking cancelled"
		body = fmt.Sprintf("The booking was cancelled: %s", b.CancellationReason)
	default:
		return
	}

	if err := s.NotificationSvc.Notify(ctx, otherID, notifType, title, body, b.ID); err != nil {
		s.Logger.Warn("failed to notify counterpart",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// SubmitReview validates and persists a review by the viewer, then
// notifies the reviewee.
func (s *DefaultBookingService) SubmitReview(ctx context.Context, bookingID, viewerID, viewerRole string, rating int, text *string) (*models.Review, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, err
	}

	existing, err := s.ReviewRepo.GetByBookingAndReviewer(bookingID, viewerID)
	if err != nil {
		return nil, err
	}

	req, err := ValidateReview(*b, viewerID, viewerRole, existing, rating, text, time.Now())
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:             uuid.New().String(),
		BookingID:      req.BookingID,
		VillaID:        req.VillaID,
		ReviewerUserID: req.ReviewerUserID,
		RevieweeUserID: req.RevieweeUserID,
		ReviewerRole:   req.ReviewerRole,
		Rating:         req.Rating,
		CreatedAt:      time.Now(),
	}
	if req.Text != nil {
		review.Text = *req.Text
	}

	if err := s.ReviewRepo.Create(review); err != nil {
		return nil, err
	}

	if err := s.NotificationSvc.Notify(ctx, req.RevieweeUserID, models.NotifReviewReceived,
		"New review", fmt.Sprintf("You received a %d-star review.", req.Rating), b.ID); err != nil {
		s.Logger.Warn("failed to notify reviewee", zap.String("bookingID", b.ID), zap.Error(err))
	}

	if s.Stats != nil {
		if err := s.Stats.InvalidateStats(ctx, b.HostUserID); err != nil {
			s.Logger.Warn("failed to invalidate host stats", zap.String("hostID", b.HostUserID), zap.Error(err))
		}
	}

	s.Logger.Info("review submitted",
		zap.String("bookingID", bookingID),
		zap.String("reviewerID", viewerID),
		zap.Int("rating", rating))
	return review, nil
}
