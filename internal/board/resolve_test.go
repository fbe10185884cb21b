package board

import (
	"errors"
	"testing"

	"huntboard/internal/models"
)

func TestResolveIntoEmptyColumn(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "a0", 1)
	apps := []*models.Application{moved}

	res, err := Resolve(moved, ColumnTarget{Status: models.StatusApplied}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.Placement.Status != models.StatusApplied {
		t.Errorf("Status = %s, want APPLIED", res.Placement.Status)
	}
	if res.Placement.OrderKey != "V" {
		t.Errorf("OrderKey = %q, want %q", res.Placement.OrderKey, "V")
	}
	if !res.StatusChanged || !res.OrderChanged {
		t.Errorf("flags = (%v, %v), want both true", res.StatusChanged, res.OrderChanged)
	}
}

func TestResolveIntoEmptyColumnKeepsDefaultKey(t *testing.T) {
	// A card already holding the one-card default key keeps it; only the
	// status counts as changed.
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{moved}

	res, err := Resolve(moved, ColumnTarget{Status: models.StatusApplied}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.Placement.OrderKey != "V" {
		t.Errorf("OrderKey = %q, want %q", res.Placement.OrderKey, "V")
	}
	if !res.StatusChanged {
		t.Error("StatusChanged = false, want true")
	}
	if res.OrderChanged {
		t.Error("OrderChanged = true, want false when the key is unchanged")
	}
}

func TestResolveColumnTargetAppendsToEnd(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{
		moved,
		testApp(2, models.StatusApplied, "F", 2),
		testApp(3, models.StatusApplied, "V", 3),
	}

	res, err := Resolve(moved, ColumnTarget{Status: models.StatusApplied}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.Placement.Status != models.StatusApplied {
		t.Errorf("Status = %s, want APPLIED", res.Placement.Status)
	}
	if res.Placement.OrderKey <= "V" {
		t.Errorf("OrderKey = %q, want a key after %q", res.Placement.OrderKey, "V")
	}
}

func TestResolveMoveToTopOfOwnColumn(t *testing.T) {
	first := testApp(1, models.StatusWishlist, "a0", 3)
	second := testApp(2, models.StatusWishlist, "a1", 2)
	moved := testApp(3, models.StatusWishlist, "a2", 1)
	apps := []*models.Application{first, second, moved}

	res, err := Resolve(moved, CardTarget{ID: first.ID}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.StatusChanged {
		t.Error("StatusChanged = true for a same-column move")
	}
	if !res.OrderChanged {
		t.Error("OrderChanged = false, want true")
	}
	if res.Placement.OrderKey >= "a0" {
		t.Errorf("OrderKey = %q, want a key before %q", res.Placement.OrderKey, "a0")
	}

	moved.Status = res.Placement.Status
	moved.OrderKey = res.Placement.OrderKey
	assertColumnOrder(t, InColumn(models.StatusWishlist, apps), 3, 1, 2)
}

func TestResolveSameColumnDragDownLandsBelowTarget(t *testing.T) {
	moved := testApp(1, models.StatusOffer, "F", 3)
	mid := testApp(2, models.StatusOffer, "V", 2)
	last := testApp(3, models.StatusOffer, "l", 1)
	apps := []*models.Application{moved, mid, last}

	res, err := Resolve(moved, CardTarget{ID: mid.ID}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// The card started above mid, so it crosses it and lands below.
	if res.Placement.OrderKey <= "V" || res.Placement.OrderKey >= "l" {
		t.Errorf("OrderKey = %q, want a key between %q and %q", res.Placement.OrderKey, "V", "l")
	}

	moved.OrderKey = res.Placement.OrderKey
	assertColumnOrder(t, InColumn(models.StatusOffer, apps), 2, 1, 3)
}

func TestResolveCrossColumnLandsAboveTarget(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "V", 4)
	apps := []*models.Application{
		moved,
		testApp(2, models.StatusApplied, "b0", 3),
		testApp(3, models.StatusApplied, "b5", 2),
		testApp(4, models.StatusApplied, "b9", 1),
	}

	res, err := Resolve(moved, CardTarget{ID: 3}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.Placement.Status != models.StatusApplied {
		t.Errorf("Status = %s, want APPLIED", res.Placement.Status)
	}
	if res.Placement.OrderKey <= "b0" || res.Placement.OrderKey >= "b5" {
		t.Errorf("OrderKey = %q, want a key strictly between %q and %q", res.Placement.OrderKey, "b0", "b5")
	}
	if !res.StatusChanged || !res.OrderChanged {
		t.Errorf("flags = (%v, %v), want both true", res.StatusChanged, res.OrderChanged)
	}
}

func TestResolveCrossColumnOntoLastCardAppends(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "V", 3)
	apps := []*models.Application{
		moved,
		testApp(2, models.StatusApplied, "b0", 2),
		testApp(3, models.StatusApplied, "b5", 1),
	}

	res, err := Resolve(moved, CardTarget{ID: 3}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.Placement.OrderKey <= "b5" {
		t.Errorf("OrderKey = %q, want a key after %q", res.Placement.OrderKey, "b5")
	}
}

func TestResolveDirectionOverridesGeometry(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "V", 3)
	first := testApp(2, models.StatusApplied, "b0", 2)
	last := testApp(3, models.StatusApplied, "b5", 1)
	apps := []*models.Application{moved, first, last}

	res, err := Resolve(moved, CardTarget{ID: last.ID, Dir: DirectionBefore}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Placement.OrderKey <= "b0" || res.Placement.OrderKey >= "b5" {
		t.Errorf("DirectionBefore: OrderKey = %q, want a key between %q and %q", res.Placement.OrderKey, "b0", "b5")
	}

	res, err = Resolve(moved, CardTarget{ID: first.ID, Dir: DirectionAfter}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Placement.OrderKey <= "b0" || res.Placement.OrderKey >= "b5" {
		t.Errorf("DirectionAfter: OrderKey = %q, want a key between %q and %q", res.Placement.OrderKey, "b0", "b5")
	}
}

func TestResolveDropOnItselfIsNoOp(t *testing.T) {
	moved := testApp(1, models.StatusInterview, "V", 2)
	apps := []*models.Application{
		moved,
		testApp(2, models.StatusInterview, "l", 1),
	}

	res, err := Resolve(moved, CardTarget{ID: moved.ID}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !res.NoOp() {
		t.Errorf("flags = (%v, %v), want a no-op", res.StatusChanged, res.OrderChanged)
	}
	if res.Placement != moved.Placement() {
		t.Errorf("Placement = %+v, want the original %+v", res.Placement, moved.Placement())
	}
}

func TestResolveOwnSlotKeepsExistingKey(t *testing.T) {
	apps := []*models.Application{
		testApp(1, models.StatusApplied, "F", 2),
		testApp(2, models.StatusApplied, "V", 1),
	}
	moved := apps[1] // already last in the column

	res, err := Resolve(moved, ColumnTarget{Status: models.StatusApplied}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !res.NoOp() {
		t.Errorf("flags = (%v, %v), want a no-op", res.StatusChanged, res.OrderChanged)
	}
	if res.Placement.OrderKey != "V" {
		t.Errorf("OrderKey = %q, want the existing key kept", res.Placement.OrderKey)
	}
}

func TestResolveAssignsKeyToLegacyRow(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "", 1)
	apps := []*models.Application{moved}

	res, err := Resolve(moved, ColumnTarget{Status: models.StatusWishlist}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if res.Placement.OrderKey == "" {
		t.Fatal("legacy row kept its empty order key")
	}
	if res.StatusChanged {
		t.Error("StatusChanged = true, want false")
	}
	if !res.OrderChanged {
		t.Error("OrderChanged = false, want true")
	}
}

func TestResolveDuplicateKeysDoNotFail(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "V", 3)
	a := testApp(2, models.StatusApplied, "0", 2)
	b := testApp(3, models.StatusApplied, "0", 1)
	apps := []*models.Application{moved, a, b}

	// b sorts first (newer), so a is the lower card of the duplicate pair.
	res, err := Resolve(moved, CardTarget{ID: a.ID, Dir: DirectionBefore}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Placement.OrderKey == "" {
		t.Fatal("resolver produced an empty key for duplicate neighbors")
	}

	again, err := Resolve(moved, CardTarget{ID: a.ID, Dir: DirectionBefore}, apps)
	if err != nil {
		t.Fatalf("Resolve failed on repeat: %v", err)
	}
	if again.Placement.OrderKey != res.Placement.OrderKey {
		t.Errorf("duplicate-key resolution not deterministic: %q vs %q", res.Placement.OrderKey, again.Placement.OrderKey)
	}
}

func TestResolveDuplicateKeysWithRoom(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "z", 3)
	a := testApp(2, models.StatusApplied, "V", 2)
	b := testApp(3, models.StatusApplied, "V", 1)
	apps := []*models.Application{moved, a, b}

	res, err := Resolve(moved, CardTarget{ID: a.ID, Dir: DirectionBefore}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Placement.OrderKey >= "V" {
		t.Errorf("OrderKey = %q, want a key before %q", res.Placement.OrderKey, "V")
	}
}

func TestResolveTargetNotFound(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{moved}

	_, err := Resolve(moved, CardTarget{ID: 999}, apps)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("err = %v, want ErrTargetNotFound", err)
	}
}

func TestResolveInvalidStatus(t *testing.T) {
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{moved}

	_, err := Resolve(moved, ColumnTarget{Status: "ARCHIVED"}, apps)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestResolveIgnoresPreviewRelocation(t *testing.T) {
	// The snapshot arrives with the moved card already visually sitting in
	// the target column. Index math must not count it.
	moved := testApp(1, models.StatusWishlist, "z", 4)
	moved.Status = models.StatusApplied // displayed status after preview
	apps := []*models.Application{
		moved,
		testApp(2, models.StatusApplied, "b0", 3),
		testApp(3, models.StatusApplied, "b5", 2),
	}

	// Pre-gesture the card lived in WISHLIST.
	original := testApp(1, models.StatusWishlist, "V", 4)

	res, err := Resolve(original, CardTarget{ID: 3}, apps)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// Card 3 is the last real sibling, so the cross-column drop appends.
	if res.Placement.OrderKey <= "b5" {
		t.Errorf("OrderKey = %q, want a key after %q", res.Placement.OrderKey, "b5")
	}
}
