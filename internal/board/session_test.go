package board

import (
	"errors"
	"testing"

	"huntboard/internal/models"
)

func TestControllerStartCapturesOriginal(t *testing.T) {
	c := NewController()
	app := testApp(1, models.StatusWishlist, "V", 1)

	if err := c.Start(app); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !c.Active() {
		t.Fatal("controller not active after Start")
	}

	sess, ok := c.Session()
	if !ok {
		t.Fatal("Session returned no session while active")
	}
	if sess.ApplicationID != 1 {
		t.Errorf("ApplicationID = %d, want 1", sess.ApplicationID)
	}
	if sess.Original != app.Placement() {
		t.Errorf("Original = %+v, want %+v", sess.Original, app.Placement())
	}
	if sess.PreviewStatus != models.StatusWishlist {
		t.Errorf("PreviewStatus = %s, want WISHLIST", sess.PreviewStatus)
	}
}

func TestControllerRejectsSecondStart(t *testing.T) {
	c := NewController()
	if err := c.Start(testApp(1, models.StatusWishlist, "V", 1)); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	err := c.Start(testApp(2, models.StatusApplied, "V", 1))
	if !errors.Is(err, ErrDragInProgress) {
		t.Fatalf("second Start err = %v, want ErrDragInProgress", err)
	}
}

func TestControllerOverTracksPreviewColumn(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 2)
	sibling := testApp(2, models.StatusInterview, "V", 1)
	apps := []*models.Application{moved, sibling}

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	status, changed := c.Over(ColumnTarget{Status: models.StatusApplied}, apps)
	if !changed || status != models.StatusApplied {
		t.Errorf("Over(column) = (%s, %v), want (APPLIED, true)", status, changed)
	}

	status, changed = c.Over(ColumnTarget{Status: models.StatusApplied}, apps)
	if changed {
		t.Errorf("Over over the same column reported a change")
	}

	status, changed = c.Over(CardTarget{ID: sibling.ID}, apps)
	if !changed || status != models.StatusInterview {
		t.Errorf("Over(card) = (%s, %v), want (INTERVIEW, true)", status, changed)
	}

	// Unknown targets leave the preview alone.
	status, changed = c.Over(CardTarget{ID: 999}, apps)
	if changed || status != models.StatusInterview {
		t.Errorf("Over(missing card) = (%s, %v), want (INTERVIEW, false)", status, changed)
	}
}

func TestControllerOverOutsideGesture(t *testing.T) {
	c := NewController()
	_, changed := c.Over(ColumnTarget{Status: models.StatusApplied}, nil)
	if changed {
		t.Error("Over reported a change with no active gesture")
	}
}

func TestControllerCancelRestoresPreview(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{moved}

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	c.Over(ColumnTarget{Status: models.StatusOffer}, apps)

	out := c.Cancel()
	if out.Kind != OutcomeCancelled {
		t.Fatalf("Kind = %v, want OutcomeCancelled", out.Kind)
	}
	if out.Restore != moved.Placement() {
		t.Errorf("Restore = %+v, want %+v", out.Restore, moved.Placement())
	}
	if !out.RestoreNeeded {
		t.Error("RestoreNeeded = false after the preview drifted")
	}
	if c.Active() {
		t.Error("controller still active after Cancel")
	}
}

func TestControllerCancelWithoutDrift(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 1)

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	out := c.Cancel()
	if out.RestoreNeeded {
		t.Error("RestoreNeeded = true though the preview never moved")
	}
}

func TestControllerDropCommits(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 2)
	apps := []*models.Application{
		moved,
		testApp(2, models.StatusApplied, "F", 1),
	}

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	c.Over(ColumnTarget{Status: models.StatusApplied}, apps)

	out := c.Drop(ColumnTarget{Status: models.StatusApplied}, apps)
	if out.Kind != OutcomeCommit {
		t.Fatalf("Kind = %v, want OutcomeCommit", out.Kind)
	}
	if out.ApplicationID != 1 {
		t.Errorf("ApplicationID = %d, want 1", out.ApplicationID)
	}
	if out.Placement.Status != models.StatusApplied {
		t.Errorf("Placement.Status = %s, want APPLIED", out.Placement.Status)
	}
	if out.Placement.OrderKey <= "F" {
		t.Errorf("Placement.OrderKey = %q, want a key after %q", out.Placement.OrderKey, "F")
	}
	if out.Restore != moved.Placement() {
		t.Errorf("Restore = %+v, want the pre-gesture placement %+v", out.Restore, moved.Placement())
	}
	if c.Active() {
		t.Error("controller still active after Drop")
	}
}

func TestControllerDropNilTargetCancels(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{moved}

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	c.Over(ColumnTarget{Status: models.StatusApplied}, apps)

	out := c.Drop(nil, apps)
	if out.Kind != OutcomeCancelled {
		t.Fatalf("Kind = %v, want OutcomeCancelled", out.Kind)
	}
	if !out.RestoreNeeded {
		t.Error("RestoreNeeded = false after the preview drifted")
	}
}

func TestControllerDropAfterGestureEnds(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{moved}

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	c.Drop(ColumnTarget{Status: models.StatusApplied}, apps)

	out := c.Drop(ColumnTarget{Status: models.StatusOffer}, apps)
	if out.Kind != OutcomeCancelled || out.ApplicationID != 0 {
		t.Errorf("second Drop = %+v, want an empty cancelled outcome", out)
	}
}

func TestControllerDropVanishedTargetFallsBack(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 2)
	apps := []*models.Application{
		moved,
		testApp(2, models.StatusApplied, "F", 1),
	}

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	c.Over(ColumnTarget{Status: models.StatusApplied}, apps)

	// The card the gesture ended on was deleted in the meantime.
	out := c.Drop(CardTarget{ID: 999}, apps)
	if out.Kind != OutcomeCommit {
		t.Fatalf("Kind = %v, want OutcomeCommit", out.Kind)
	}
	if out.Placement.Status != models.StatusApplied {
		t.Errorf("Placement.Status = %s, want the previewed column APPLIED", out.Placement.Status)
	}
	if out.Placement.OrderKey <= "F" {
		t.Errorf("Placement.OrderKey = %q, want the end of the column", out.Placement.OrderKey)
	}
}

func TestControllerDropNoOp(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{moved}

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	out := c.Drop(CardTarget{ID: moved.ID}, apps)
	if out.Kind != OutcomeNoOp {
		t.Fatalf("Kind = %v, want OutcomeNoOp", out.Kind)
	}
	if out.Placement != moved.Placement() {
		t.Errorf("Placement = %+v, want the original %+v", out.Placement, moved.Placement())
	}
	if out.RestoreNeeded {
		t.Error("RestoreNeeded = true though the preview never moved")
	}
}

func TestControllerNoOpAfterDriftRestores(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 1)
	apps := []*models.Application{moved}

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	c.Over(ColumnTarget{Status: models.StatusApplied}, apps)
	c.Over(ColumnTarget{Status: models.StatusWishlist}, apps)
	c.Over(ColumnTarget{Status: models.StatusApplied}, apps)

	out := c.Drop(CardTarget{ID: moved.ID}, apps)
	if out.Kind != OutcomeNoOp {
		t.Fatalf("Kind = %v, want OutcomeNoOp", out.Kind)
	}
	if !out.RestoreNeeded {
		t.Error("RestoreNeeded = false though the card is displayed in another column")
	}
	if out.Restore != moved.Placement() {
		t.Errorf("Restore = %+v, want %+v", out.Restore, moved.Placement())
	}
}

func TestRollbackRestoresOriginalPlacement(t *testing.T) {
	c := NewController()
	moved := testApp(1, models.StatusWishlist, "V", 3)
	apps := []*models.Application{
		moved,
		testApp(2, models.StatusWishlist, "l", 2),
		testApp(3, models.StatusApplied, "F", 1),
	}
	original := moved.Placement()

	if err := c.Start(moved); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	c.Over(ColumnTarget{Status: models.StatusApplied}, apps)

	out := c.Drop(ColumnTarget{Status: models.StatusApplied}, apps)
	if out.Kind != OutcomeCommit {
		t.Fatalf("Kind = %v, want OutcomeCommit", out.Kind)
	}

	// Optimistic apply.
	moved.Status = out.Placement.Status
	moved.OrderKey = out.Placement.OrderKey
	assertColumnOrder(t, InColumn(models.StatusApplied, apps), 3, 1)

	// The save fails, so the caller reverts to the captured placement.
	moved.Status = out.Restore.Status
	moved.OrderKey = out.Restore.OrderKey

	if moved.Placement() != original {
		t.Errorf("placement after rollback = %+v, want %+v", moved.Placement(), original)
	}
	assertColumnOrder(t, InColumn(models.StatusWishlist, apps), 1, 2)
	assertColumnOrder(t, InColumn(models.StatusApplied, apps), 3)
}
