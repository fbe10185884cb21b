package state

import "charm.land/huh/v2"

// FormState manages the application form: the huh form instance, its field
// values, and the editing context. The same form serves both creation and
// editing; EditingID is 0 when creating.
type FormState struct {
	Form      *huh.Form
	EditingID int

	// Form field values, bound into the huh form by pointer
	Company  string
	Role     string
	URL      string
	Location string
	Salary   string
	Notes    string
	Status   string // column choice, only shown when creating
	Confirm  bool

	// Snapshot of values when the form opened, for change detection
	initial formSnapshot
}

type formSnapshot struct {
	company  string
	role     string
	url      string
	location string
	salary   string
	notes    string
	status   string
}

// NewFormState creates a new FormState with default values.
func NewFormState() *FormState {
	return &FormState{Confirm: true}
}

// Clear resets all form fields to their default values.
func (s *FormState) Clear() {
	s.Form = nil
	s.EditingID = 0
	s.Company = ""
	s.Role = ""
	s.URL = ""
	s.Location = ""
	s.Salary = ""
	s.Notes = ""
	s.Status = ""
	s.Confirm = true
	s.initial = formSnapshot{}
}

// IsActive returns true if a form is currently open.
func (s *FormState) IsActive() bool {
	return s.Form != nil
}

// Snapshot records the current field values as the baseline for change
// detection. Call this right after populating the form.
func (s *FormState) Snapshot() {
	s.initial = formSnapshot{
		company:  s.Company,
		role:     s.Role,
		url:      s.URL,
		location: s.Location,
		salary:   s.Salary,
		notes:    s.Notes,
		status:   s.Status,
	}
}

// HasChanges reports whether any field differs from the snapshot taken when
// the form opened. Used to decide whether ESC needs a discard confirmation.
func (s *FormState) HasChanges() bool {
	return s.Company != s.initial.company ||
		s.Role != s.initial.role ||
		s.URL != s.initial.url ||
		s.Location != s.initial.location ||
		s.Salary != s.initial.salary ||
		s.Notes != s.initial.notes ||
		s.Status != s.initial.status
}
