package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom() RoomDescriptor {
	return RoomDescriptor{
		Category:    RoomStandard,
		BasePrice:   decimal.NewFromInt(100),
		Description: "Standard room",
	}
}

func TestPackageBuilder(t *testing.T) {
	pkg := NewPackageBuilder().
		WithRoom(testRoom()).
		WithServices([]string{"Wi-Fi", "Gym"}).
		WithBreakfast().
		WithMiniBar().
		Build()

	assert.Equal(t, RoomStandard, pkg.Room.Category)
	assert.Equal(t, []string{"Wi-Fi", "Gym"}, pkg.Services)
	assert.True(t, pkg.HasAddOn(AddOnBreakfast))
	assert.True(t, pkg.HasAddOn(AddOnMiniBar))
	assert.False(t, pkg.HasAddOn(AddOnTransfer))
}

func TestPackageBuilder_AddOnNotDuplicated(t *testing.T) {
	pkg := NewPackageBuilder().
		WithRoom(testRoom()).
		WithMiniBar().
		WithMiniBar().
		Build()

	assert.Equal(t, []AddOn{AddOnMiniBar}, pkg.AddOns)
}

func TestPackageBuilder_IntermediateValuesIndependent(t *testing.T) {
	base := NewPackageBuilder().WithRoom(testRoom())

	withBreakfast := base.WithBreakfast().Build()
	withTransfer := base.WithTransfer().Build()

	assert.Equal(t, []AddOn{AddOnBreakfast}, withBreakfast.AddOns)
	assert.Equal(t, []AddOn{AddOnTransfer}, withTransfer.AddOns)
}

func TestPackage_Describe(t *testing.T) {
	pkg := NewPackageBuilder().
		WithRoom(testRoom()).
		WithServices([]string{"Wi-Fi"}).
		WithLateCheckout().
		Build()

	assert.Equal(t, "Room: Standard room; Services: Wi-Fi; Extras: LateCheckout", pkg.Describe())

	bare := NewPackageBuilder().WithRoom(testRoom()).WithServices([]string{"Wi-Fi"}).Build()
	assert.Equal(t, "Room: Standard room; Services: Wi-Fi; Extras: None", bare.Describe())
}

func TestNights(t *testing.T) {
	checkIn := mustDate(t, "2025-10-15")

	assert.Equal(t, 2, Nights(checkIn, mustDate(t, "2025-10-17")))
	assert.Equal(t, 0, Nights(checkIn, checkIn))
	assert.Equal(t, -1, Nights(checkIn, mustDate(t, "2025-10-14")))
}

func TestCloneGroup(t *testing.T) {
	pkg := NewPackageBuilder().WithRoom(testRoom()).WithServices([]string{"Wi-Fi"}).Build()
	price := decimal.RequireFromString("290.00")

	bookings, err := CloneGroup(pkg, "Grand Plaza", mustDate(t, "2025-10-15"), mustDate(t, "2025-10-17"), price, 3)
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	ids := make(map[string]struct{})
	for _, b := range bookings {
		ids[b.ID] = struct{}{}
		assert.Equal(t, pkg, b.Package)
		assert.True(t, b.Price.Equal(price))
		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, "Grand Plaza", b.HotelName)
	}

	// Идентификаторы уникальны, клоны не перепутать между собой
	assert.Len(t, ids, 3)
}

func TestCloneGroup_StatusesIndependent(t *testing.T) {
	pkg := NewPackageBuilder().WithRoom(testRoom()).Build()

	bookings, err := CloneGroup(pkg, "Grand Plaza", mustDate(t, "2025-10-15"), mustDate(t, "2025-10-17"), decimal.Zero, 2)
	require.NoError(t, err)

	bookings[0].Status = StatusFailed

	assert.Equal(t, StatusPending, bookings[1].Status)
}

func TestCloneGroup_InvalidGroupSize(t *testing.T) {
	pkg := NewPackageBuilder().WithRoom(testRoom()).Build()

	for _, count := range []int{0, -1} {
		_, err := CloneGroup(pkg, "Grand Plaza", mustDate(t, "2025-10-15"), mustDate(t, "2025-10-17"), decimal.Zero, count)
		assert.ErrorIs(t, err, ErrInvalidGroupSize)
	}
}

func TestBookingRecord(t *testing.T) {
	pkg := NewPackageBuilder().
		WithRoom(testRoom()).
		WithServices([]string{"Wi-Fi"}).
		WithMiniBar().
		Build()

	bookings, err := CloneGroup(pkg, "Grand Plaza", mustDate(t, "2025-10-15"), mustDate(t, "2025-10-17"),
		decimal.RequireFromString("290.00"), 1)
	require.NoError(t, err)

	b := bookings[0]
	b.Status = StatusConfirmed
	record := b.Record()

	assert.Equal(t, b.ID, record.ID)
	assert.Equal(t, "Grand Plaza", record.HotelName)
	assert.Equal(t, "Standard", record.RoomType)
	assert.Equal(t, pkg.Describe(), record.ServicesDescription)
	assert.True(t, record.TotalPrice.Equal(b.Price))
	assert.Equal(t, StatusConfirmed, record.Status)
}
