package booking

import (
	"testing"
	"time"

	"villabook/models"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func fixtureBooking(status string) models.Booking {
	return models.Booking{
		ID:          "bk-1",
		VillaID:     "villa-1",
		GuestUserID: "guest-1",
		HostUserID:  "host-1",
		Status:      status,
		StartDate:   testNow.AddDate(0, 0, 7),
		EndDate:     testNow.AddDate(0, 0, 10),
		TotalPrice:  1200,
		CreatedAt:   testNow.AddDate(0, 0, -1),
	}
}

func TestComputePermissionsPendingHost(t *testing.T) {
	b := fixtureBooking(models.BookingPending)
	counterpart := &models.User{ID: "guest-1"}

	perms := ComputePermissions(b, "host-1", models.RoleHost, nil, counterpart, testNow)

	assert.True(t, perms.CanApprove)
	assert.True(t, perms.CanReject)
	assert.False(t, perms.CanCancel)
	assert.False(t, perms.CanReview)
	assert.True(t, perms.CanContact)
}

func TestComputePermissionsPendingGuest(t *testing.T) {
	b := fixtureBooking(models.BookingPending)
	counterpart := &models.User{ID: "host-1"}

	perms := ComputePermissions(b, "guest-1", models.RoleGuest, nil, counterpart, testNow)

	assert.False(t, perms.CanApprove)
	assert.False(t, perms.CanReject)
	assert.True(t, perms.CanCancel)
	assert.False(t, perms.CanReview)
}

func TestComputePermissionsCancelConfirmed(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)

	guestPerms := ComputePermissions(b, "guest-1", models.RoleGuest, nil, nil, testNow)
	hostPerms := ComputePermissions(b, "host-1", models.RoleHost, nil, nil, testNow)

	assert.True(t, guestPerms.CanCancel)
	assert.True(t, hostPerms.CanCancel)
	assert.False(t, hostPerms.CanApprove, "confirmed booking cannot be approved again")
}

func TestComputePermissionsTerminalStates(t *testing.T) {
	for _, status := range []string{models.BookingCancelled, models.BookingRejected} {
		b := fixtureBooking(status)
		perms := ComputePermissions(b, "host-1", models.RoleHost, nil, &models.User{ID: "guest-1"}, testNow)

		assert.False(t, perms.CanApprove, status)
		assert.False(t, perms.CanReject, status)
		assert.False(t, perms.CanCancel, status)
		assert.False(t, perms.CanReview, status)
	}
}

func TestComputePermissionsReviewAfterStay(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)
	b.StartDate = testNow.AddDate(0, 0, -10)
	b.EndDate = testNow.AddDate(0, 0, -5)

	guestPerms := ComputePermissions(b, "guest-1", models.RoleGuest, nil, nil, testNow)
	hostPerms := ComputePermissions(b, "host-1", models.RoleHost, nil, nil, testNow)

	assert.True(t, guestPerms.CanReview)
	assert.True(t, hostPerms.CanReview)

	// Once the guest has reviewed, only the guest loses eligibility.
	existing := &models.Review{ID: "rv-1", BookingID: b.ID, ReviewerUserID: "guest-1"}
	guestPerms = ComputePermissions(b, "guest-1", models.RoleGuest, existing, nil, testNow)
	hostPerms = ComputePermissions(b, "host-1", models.RoleHost, nil, nil, testNow)

	assert.False(t, guestPerms.CanReview)
	assert.True(t, hostPerms.CanReview)
}

func TestComputePermissionsNoReviewBeforeStayEnds(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)

	perms := ComputePermissions(b, "guest-1", models.RoleGuest, nil, nil, testNow)
	assert.False(t, perms.CanReview, "stay has not ended yet")
}

func TestComputePermissionsStranger(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)
	b.EndDate = testNow.AddDate(0, 0, -1)

	perms := ComputePermissions(b, "someone-else", models.RoleGuest, nil, &models.User{ID: "host-1"}, testNow)

	assert.False(t, perms.CanApprove)
	assert.False(t, perms.CanReject)
	assert.False(t, perms.CanCancel)
	assert.False(t, perms.CanReview)
}

func TestComputePermissionsContact(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)

	withProfile := ComputePermissions(b, "guest-1", models.RoleGuest, nil, &models.User{ID: "host-1"}, testNow)
	withoutProfile := ComputePermissions(b, "guest-1", models.RoleGuest, nil, nil, testNow)

	assert.True(t, withProfile.CanContact)
	assert.False(t, withoutProfile.CanContact)

	cancelled := fixtureBooking(models.BookingCancelled)
	perms := ComputePermissions(cancelled, "guest-1", models.RoleGuest, nil, &models.User{ID: "host-1"}, testNow)
	assert.False(t, perms.CanContact)
}

func TestComputePermissionsIdempotent(t *testing.T) {
	b := fixtureBooking(models.BookingConfirmed)
	counterpart := &models.User{ID: "host-1"}

	first := ComputePermissions(b, "guest-1", models.RoleGuest, nil, counterpart, testNow)
	second := ComputePermissions(b, "guest-1", models.RoleGuest, nil, counterpart, testNow)

	assert.Equal(t, first, second)
}
