// Package groupedit implements the create/edit group dialog independently of
// any rendering technology. A ModalHost draws the ViewModel it is handed and
// runs the SaveCmd returned by Submit off the UI loop, feeding the outcome
// back through HandleResult.
package groupedit

import (
	"context"
	"errors"
	"log"

	"groupedit/internal/domain"
)

// Store is the part of a group store the dialog needs
type Store interface {
	Create(ctx context.Context, fields domain.GroupFields) (*domain.GroupRecord, error)
	Update(ctx context.Context, record *domain.GroupRecord, fields domain.GroupFields) (*domain.GroupRecord, error)
}

// ModalHost presents the dialog
type ModalHost interface {
	Show(vm ViewModel)
	Hide()
}

// Publisher receives dialog lifecycle and saved events
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// State is the dialog lifecycle state
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// FormValues are the raw values read from the form on submit.
// AddAllowed is nil when the form has no selector.
type FormValues struct {
	Name        string
	Description string
	Public      bool
	AddAllowed  *domain.AddAllowed
}

// SaveResult is the outcome of one save request
type SaveResult struct {
	Generation uint64
	Record     *domain.GroupRecord
	Err        error
}

// SaveCmd performs a save request. It blocks and must run off the UI loop.
type SaveCmd func() SaveResult

// Controller drives one create or edit dialog
type Controller struct {
	record *domain.GroupRecord // nil in create mode
	caps   domain.Capabilities
	store  Store
	host   ModalHost
	pub    Publisher

	state      State
	draft      domain.GroupDraft
	form       FormState
	generation uint64
}

// New creates a dialog controller. A nil record means create mode.
// pub may be nil.
func New(record *domain.GroupRecord, caps domain.Capabilities, store Store, host ModalHost, pub Publisher) *Controller {
	return &Controller{
		record: record,
		caps:   caps,
		store:  store,
		host:   host,
		pub:    pub,
	}
}

// Mode reports whether the dialog creates or edits a group
func (c *Controller) Mode() domain.Mode {
	if c.record == nil {
		return domain.ModeCreate
	}
	return domain.ModeEdit
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	return c.state
}

// ViewModel returns the current view model without showing it
func (c *Controller) ViewModel() ViewModel {
	return BuildViewModel(c.record, c.draft, c.caps, c.form)
}

// Render seeds the form when the dialog is closed and shows it
func (c *Controller) Render() ViewModel {
	if c.state == StateClosed {
		c.draft = domain.NewDraft(c.record, c.caps)
		c.form = FormState{
			Privacy:     privacyOptions(c.draft.IsPublic),
			SaveEnabled: true,
			Focus:       FieldName,
		}
		c.syncPrivacy()
		c.state = StateOpening
	}

	vm := c.ViewModel()
	c.host.Show(vm)
	return vm
}

// Opened is the host's signal that the dialog is on screen
func (c *Controller) Opened() {
	if c.state != StateOpening {
		return
	}
	c.state = StateOpen
	c.form.Focus = FieldName
	c.publish(domain.DialogOpenedEvent{Mode: c.Mode()})
}

// Closed is the host's signal that the dialog went away. Calling it again is a no-op.
func (c *Controller) Closed() {
	if c.state == StateClosed {
		return
	}
	c.state = StateClosed
	c.draft = domain.GroupDraft{}
	c.form = FormState{}
	c.publish(domain.DialogClosedEvent{Mode: c.Mode()})
}

// Cancel dismisses the dialog without saving. An in-flight save is not cancelled.
func (c *Controller) Cancel() {
	if c.state == StateClosed {
		return
	}
	c.host.Hide()
	c.Closed()
}

// SetFocus records focus moves made by the host
func (c *Controller) SetFocus(f Field) {
	c.form.Focus = f
}

// CheckPrivacy checks the radio with the given value and unchecks the rest
func (c *Controller) CheckPrivacy(value string) {
	if c.state == StateClosed {
		return
	}
	for i := range c.form.Privacy {
		c.form.Privacy[i].Checked = c.form.Privacy[i].Value == value
	}
	c.draft.IsPublic = value == PrivacyPublic
	c.PrivacyChanged()
}

// PrivacyChanged marks the checked privacy radio as selected and clears the others
func (c *Controller) PrivacyChanged() {
	c.syncPrivacy()
	if c.state != StateClosed {
		c.host.Show(c.ViewModel())
	}
}

func (c *Controller) syncPrivacy() {
	for i := range c.form.Privacy {
		c.form.Privacy[i].Selected = c.form.Privacy[i].Checked
	}
}

// SelectAddAllowed changes the add-to-group selector. Ignored when the form has no selector.
func (c *Controller) SelectAddAllowed(v domain.AddAllowed) {
	if !domain.HasAddAllowed(c.record, c.caps) || c.state == StateClosed {
		return
	}
	c.draft.AddAllowedPolicy = v
	c.host.Show(c.ViewModel())
}

// Submit starts a save. It returns nil when the dialog is not accepting a
// submission, otherwise a SaveCmd for the host to run asynchronously.
func (c *Controller) Submit(ctx context.Context, values FormValues) SaveCmd {
	if c.state != StateOpen || !c.form.SaveEnabled {
		return nil
	}

	c.form.SaveEnabled = false
	c.form.ValidationMessage = ""
	fields := c.extract(values)

	c.state = StateSubmitting
	c.generation++
	gen := c.generation
	c.host.Show(c.ViewModel())

	if c.record == nil {
		return c.createGroup(ctx, gen, fields)
	}
	return c.updateGroup(ctx, gen, fields)
}

// extract builds the field set and keeps the draft in step with it.
// addAllowed is only sent when the selector is part of the form.
func (c *Controller) extract(values FormValues) domain.GroupFields {
	fields := domain.GroupFields{
		Name:        values.Name,
		Description: values.Description,
		Public:      values.Public,
	}
	c.draft.Name = values.Name
	c.draft.Description = values.Description
	c.draft.IsPublic = values.Public

	if domain.HasAddAllowed(c.record, c.caps) {
		v := c.draft.AddAllowedPolicy
		if values.AddAllowed != nil {
			v = *values.AddAllowed
		}
		c.draft.AddAllowedPolicy = v
		fields.AddAllowed = &v
	}
	return fields
}

func (c *Controller) createGroup(ctx context.Context, gen uint64, fields domain.GroupFields) SaveCmd {
	store := c.store
	return func() SaveResult {
		rec, err := store.Create(ctx, fields)
		return SaveResult{Generation: gen, Record: rec, Err: err}
	}
}

// updateGroup sends a snapshot of the bound record; the bound record itself
// only changes when a current result arrives
func (c *Controller) updateGroup(ctx context.Context, gen uint64, fields domain.GroupFields) SaveCmd {
	store := c.store
	snapshot := c.record.Clone()
	return func() SaveResult {
		rec, err := store.Update(ctx, snapshot, fields)
		return SaveResult{Generation: gen, Record: rec, Err: err}
	}
}

// HandleResult applies a save outcome. Results from superseded requests or
// arriving after the dialog closed are dropped; it reports whether res was applied.
func (c *Controller) HandleResult(res SaveResult) bool {
	if c.state != StateSubmitting || res.Generation != c.generation {
		log.Printf("Ignoring %s save result: generation %d, current %d, state %s",
			c.Mode(), res.Generation, c.generation, c.state)
		return false
	}

	if res.Err == nil && res.Record == nil {
		res.Err = errors.New("store returned no group")
	}
	if res.Err != nil {
		c.fail(res.Err)
		return true
	}

	saved := res.Record
	if c.record != nil {
		*c.record = *res.Record
		saved = c.record
	}

	c.host.Hide()
	c.Closed()
	c.publish(domain.GroupSavedEvent{Mode: c.Mode(), Record: saved})
	return true
}

func (c *Controller) fail(err error) {
	fe := asFieldError(err)
	log.Printf("Saving group failed: %v", err)

	c.state = StateOpen
	c.form.SaveEnabled = true
	c.form.ValidationMessage = fe.Message
	if f, ok := FieldFromKey(fe.Field); ok {
		c.form.Focus = f
	}
	c.host.Show(c.ViewModel())
}

// asFieldError normalizes any store error into something the form can show
func asFieldError(err error) *domain.FieldError {
	const fallback = "Saving the group failed"

	var fe *domain.FieldError
	if errors.As(err, &fe) {
		if fe.Message == "" {
			return &domain.FieldError{Field: fe.Field, Message: fallback}
		}
		return fe
	}
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	return &domain.FieldError{Message: msg}
}

func (c *Controller) publish(event domain.DomainEvent) {
	if c.pub != nil {
		c.pub.Publish(event)
	}
}
