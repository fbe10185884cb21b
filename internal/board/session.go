package board

import "huntboard/internal/models"

// Phase is the lifecycle state of a drag gesture.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
)

// Session captures one in-flight drag gesture. Original is the placement
// the card held when it was picked up; it is the only authority for what a
// revert means, no matter how the preview moved in between.
type Session struct {
	ApplicationID int
	Original      models.Placement
	PreviewStatus models.Status
}

// OutcomeKind says how a gesture ended.
type OutcomeKind int

const (
	OutcomeCancelled OutcomeKind = iota
	OutcomeNoOp
	OutcomeCommit
)

// Outcome is the terminal result of a gesture, returned as a plain value
// once the controller is already idle again. For a commit the caller applies
// Placement optimistically, persists it, and keeps Restore around to revert
// with if the save fails. RestoreNeeded is set when the preview drifted from
// the original column and must be put back.
type Outcome struct {
	Kind          OutcomeKind
	ApplicationID int
	Placement     models.Placement
	Restore       models.Placement
	RestoreNeeded bool
}

// Controller runs the drag state machine. It owns no rendering and no
// persistence: callers feed it targets and snapshots and act on the values
// it returns. Only one gesture runs at a time.
type Controller struct {
	phase   Phase
	session Session
}

func NewController() *Controller {
	return &Controller{}
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Active reports whether a gesture is in flight.
func (c *Controller) Active() bool {
	return c.phase == PhaseActive
}

// Session returns a copy of the in-flight session, if any.
func (c *Controller) Session() (Session, bool) {
	if c.phase != PhaseActive {
		return Session{}, false
	}
	return c.session, true
}

// Start begins a gesture on app, capturing its placement as the revert
// point.
func (c *Controller) Start(app *models.Application) error {
	if c.phase == PhaseActive {
		return ErrDragInProgress
	}
	c.phase = PhaseActive
	c.session = Session{
		ApplicationID: app.ID,
		Original:      app.Placement(),
		PreviewStatus: app.Status,
	}
	return nil
}

// Over tracks the column the gesture is hovering. It returns the column the
// card should be displayed in and whether that changed, so the caller can
// move the preview; nothing is persisted. Outside an active gesture it does
// nothing.
func (c *Controller) Over(target Target, apps []*models.Application) (models.Status, bool) {
	if c.phase != PhaseActive {
		return "", false
	}

	status := c.session.PreviewStatus
	switch t := target.(type) {
	case ColumnTarget:
		if t.Status.Valid() {
			status = t.Status
		}
	case CardTarget:
		if sibling := findByID(apps, t.ID); sibling != nil {
			status = sibling.Status
		}
	}

	if status == c.session.PreviewStatus {
		return status, false
	}
	c.session.PreviewStatus = status
	return status, true
}

// Cancel ends the gesture without resolving anything. The returned outcome
// carries the original placement so the caller can put the preview back.
func (c *Controller) Cancel() Outcome {
	if c.phase != PhaseActive {
		return Outcome{Kind: OutcomeCancelled}
	}
	sess := c.session
	c.reset()
	return cancelled(sess)
}

// Drop ends the gesture by resolving target against the snapshot. The
// controller is idle again by the time Drop returns; whatever persistence
// the outcome calls for happens on the caller's side. A nil target cancels.
// When the target card has vanished from the snapshot the drop lands at the
// end of the column the card is being displayed in instead of being lost.
func (c *Controller) Drop(target Target, apps []*models.Application) Outcome {
	if c.phase != PhaseActive {
		return Outcome{Kind: OutcomeCancelled}
	}
	sess := c.session
	c.reset()

	if target == nil {
		return cancelled(sess)
	}

	moved := &models.Application{
		ID:       sess.ApplicationID,
		Status:   sess.Original.Status,
		OrderKey: sess.Original.OrderKey,
	}

	res, err := Resolve(moved, target, apps)
	if err != nil {
		res, err = Resolve(moved, ColumnTarget{Status: sess.PreviewStatus}, apps)
	}
	if err != nil {
		return cancelled(sess)
	}

	if res.NoOp() {
		return Outcome{
			Kind:          OutcomeNoOp,
			ApplicationID: sess.ApplicationID,
			Placement:     sess.Original,
			Restore:       sess.Original,
			RestoreNeeded: sess.PreviewStatus != sess.Original.Status,
		}
	}

	return Outcome{
		Kind:          OutcomeCommit,
		ApplicationID: sess.ApplicationID,
		Placement:     res.Placement,
		Restore:       sess.Original,
	}
}

func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.session = Session{}
}

func cancelled(sess Session) Outcome {
	return Outcome{
		Kind:          OutcomeCancelled,
		ApplicationID: sess.ApplicationID,
		Restore:       sess.Original,
		RestoreNeeded: sess.PreviewStatus != sess.Original.Status,
	}
}
