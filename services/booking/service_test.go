package booking

import (
	"context"
	"testing"
	"time"

	"villabook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByGuest(guestUserID string) ([]models.Booking, error) {
	args := m.Called(guestUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByHost(hostUserID string) ([]models.Booking, error) {
	args := m.Called(hostUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetConfirmedByHost(hostUserID string) ([]models.Booking, error) {
	args := m.Called(hostUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) ApplyTransition(req models.TransitionRequest, expectedCurrent []string) (bool, error) {
	args := m.Called(req, expectedCurrent)
	return args.Bool(0), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByBookingAndReviewer(bookingID, reviewerUserID string) (*models.Review, error) {
	args := m.Called(bookingID, reviewerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByReviewee(revieweeUserID string) ([]models.Review, error) {
	args := m.Called(revieweeUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByVilla(villaID string) ([]models.Review, error) {
	args := m.Called(villaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) SoftDelete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID, notifType, title, body, bookingID string) error {
	args := m.Called(ctx, userID, notifType, title, body, bookingID)
	return args.Error(0)
}

func (m *MockNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

type MockStatsInvalidator struct {
	mock.Mock
}

func (m *MockStatsInvalidator) InvalidateStats(ctx context.Context, hostUserID string) error {
	args := m.Called(ctx, hostUserID)
	return args.Error(0)
}

// endedBooking is a confirmed booking whose stay ended before the
// real clock, since the service takes time.Now itself.
func endedBooking() models.Booking {
	b := fixtureBooking(models.BookingConfirmed)
	b.StartDate = time.Now().AddDate(0, 0, -10)
	b.EndDate = time.Now().AddDate(0, 0, -5)
	return b
}

func newTestService() (*DefaultBookingService, *MockBookingRepository, *MockReviewRepository, *MockUserRepository, *MockNotificationService, *MockStatsInvalidator) {
	repo := new(MockBookingRepository)
	reviews := new(MockReviewRepository)
	users := new(MockUserRepository)
	notifs := new(MockNotificationService)
	stats := new(MockStatsInvalidator)

	svc := &DefaultBookingService{
		Repo:            repo,
		ReviewRepo:      reviews,
		UserRepo:        users,
		NotificationSvc: notifs,
		Stats:           stats,
		Logger:          zap.NewNop(),
	}
	return svc, repo, reviews, users, notifs, stats
}

func TestApplyTransitionHostApproves(t *testing.T) {
	svc, repo, _, _, notifs, stats := newTestService()
	b := fixtureBooking(models.BookingPending)

	repo.On("GetByID", "bk-1").Return(&b, nil)
	repo.On("ApplyTransition", models.TransitionRequest{
		BookingID: "bk-1",
		Status:    models.BookingConfirmed,
	}, []string{models.BookingPending}).Return(true, nil)
	notifs.On("Notify", mock.Anything, "guest-1", models.NotifBookingConfirmed, mock.Anything, mock.Anything, "bk-1").Return(nil)
	stats.On("InvalidateStats", mock.Anything, "host-1").Return(nil)

	updated, err := svc.ApplyTransition(context.Background(), "bk-1", "host-1", models.RoleHost, models.BookingConfirmed, "")

	assert.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	repo.AssertExpectations(t)
	notifs.AssertExpectations(t)
	stats.AssertExpectations(t)
}

func TestApplyTransitionGuestCancelsWithReason(t *testing.T) {
	svc, repo, _, _, notifs, stats := newTestService()
	b := fixtureBooking(models.BookingConfirmed)

	repo.On("GetByID", "bk-1").Return(&b, nil)
	repo.On("ApplyTransition", models.TransitionRequest{
		BookingID:          "bk-1",
		Status:             models.BookingCancelled,
		CancellationReason: "Change of plans",
	}, []string{models.BookingConfirmed}).Return(true, nil)
	notifs.On("Notify", mock.Anything, "host-1", models.NotifBookingCancelled, mock.Anything, mock.Anything, "bk-1").Return(nil)
	stats.On("InvalidateStats", mock.Anything, "host-1").Return(nil)

	updated, err := svc.ApplyTransition(context.Background(), "bk-1", "guest-1", models.RoleGuest, models.BookingCancelled, "Change of plans")

	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)
	assert.Equal(t, "Change of plans", updated.CancellationReason)
}

func TestApplyTransitionGuestCannotApprove(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()
	b := fixtureBooking(models.BookingPending)

	repo.On("GetByID", "bk-1").Return(&b, nil)

	_, err := svc.ApplyTransition(context.Background(), "bk-1", "guest-1", models.RoleGuest, models.BookingConfirmed, "")

	assert.Equal(t, CodeNotAllowed, ErrCode(err))
	repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
}

func TestApplyTransitionMissingReasonNotPersisted(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()
	b := fixtureBooking(models.BookingConfirmed)

	repo.On("GetByID", "bk-1").Return(&b, nil)

	_, err := svc.ApplyTransition(context.Background(), "bk-1", "guest-1", models.RoleGuest, models.BookingCancelled, "  ")

	assert.Equal(t, CodeMissingReason, ErrCode(err))
	repo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
}

func TestApplyTransitionRaceConflict(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()
	b := fixtureBooking(models.BookingPending)

	repo.On("GetByID", "bk-1").Return(&b, nil)
	repo.On("ApplyTransition", mock.Anything, mock.Anything).Return(false, nil)

	_, err := svc.ApplyTransition(context.Background(), "bk-1", "host-1", models.RoleHost, models.BookingConfirmed, "")

	assert.Equal(t, CodeConflict, ErrCode(err))
}

func TestApplyTransitionBookingNotFound(t *testing.T) {
	svc, repo, _, _, _, _ := newTestService()

	repo.On("GetByID", "missing").Return(nil, nil)

	_, err := svc.ApplyTransition(context.Background(), "missing", "host-1", models.RoleHost, models.BookingConfirmed, "")

	assert.Equal(t, CodeNotFound, ErrCode(err))
}

func TestSubmitReviewGuest(t *testing.T) {
	svc, repo, reviews, _, notifs, stats := newTestService()
	b := endedBooking()
	text := "Great host"

	repo.On("GetByID", "bk-1").Return(&b, nil)
	reviews.On("GetByBookingAndReviewer", "bk-1", "guest-1").Return(nil, nil)
	reviews.On("Create", mock.MatchedBy(func(r *models.Review) bool {
		return r.BookingID == "bk-1" &&
			r.ReviewerUserID == "guest-1" &&
			r.RevieweeUserID == "host-1" &&
			r.ReviewerRole == models.RoleGuest &&
			r.Rating == 5 &&
			r.Text == "Great host" &&
			r.ID != ""
	})).Return(nil)
	notifs.On("Notify", mock.Anything, "host-1", models.NotifReviewReceived, mock.Anything, mock.Anything, "bk-1").Return(nil)
	stats.On("InvalidateStats", mock.Anything, "host-1").Return(nil)

	review, err := svc.SubmitReview(context.Background(), "bk-1", "guest-1", models.RoleGuest, 5, &text)

	assert.NoError(t, err)
	assert.Equal(t, "host-1", review.RevieweeUserID)
	reviews.AssertExpectations(t)
}

func TestSubmitReviewAlreadyReviewed(t *testing.T) {
	svc, repo, reviews, _, _, _ := newTestService()
	b := endedBooking()
	existing := &models.Review{ID: "rv-1", BookingID: "bk-1", ReviewerUserID: "guest-1"}

	repo.On("GetByID", "bk-1").Return(&b, nil)
	reviews.On("GetByBookingAndReviewer", "bk-1", "guest-1").Return(existing, nil)

	_, err := svc.SubmitReview(context.Background(), "bk-1", "guest-1", models.RoleGuest, 5, nil)

	assert.Equal(t, CodeNotEligible, ErrCode(err))
	reviews.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetBookingDetailPermissionsAndCounterpart(t *testing.T) {
	svc, repo, reviews, users, _, _ := newTestService()
	b := fixtureBooking(models.BookingPending)
	hostProfile := &models.User{ID: "host-1", Name: "Ana"}

	repo.On("GetByID", "bk-1").Return(&b, nil)
	users.On("GetByID", "host-1").Return(hostProfile, nil)
	reviews.On("GetByBookingAndReviewer", "bk-1", "guest-1").Return(nil, nil)

	detail, err := svc.GetBookingDetail(context.Background(), "bk-1", "guest-1", models.RoleGuest)

	assert.NoError(t, err)
	assert.True(t, detail.Permissions.CanCancel)
	assert.False(t, detail.Permissions.CanApprove)
	assert.True(t, detail.Permissions.CanContact)
	assert.Equal(t, hostProfile, detail.Counterpart)
}
