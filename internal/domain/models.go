package domain

import (
	"fmt"
	"time"
)

// Mode is the dialog mode, fixed when the dialog is constructed
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Policy is the site-wide add-to-group policy reported on a group record
type Policy string

const (
	PolicyUnset    Policy = ""
	PolicyNoMod    Policy = "nomod"
	PolicyYesMod   Policy = "yesmod"
	PolicyNoAdmin  Policy = "noadmin"
	PolicyYesAdmin Policy = "yesadmin"
)

// AddAllowed is the value of the add-to-group selector
type AddAllowed string

const (
	AddAllowedUnset         AddAllowed = ""
	AddAllowedModerator     AddAllowed = "moderator"
	AddAllowedAdministrator AddAllowed = "administrator"
)

// AddAllowedOptions lists the selector values in display order
var AddAllowedOptions = []AddAllowed{AddAllowedModerator, AddAllowedAdministrator}

// Valid reports whether a is a value the selector can submit
func (a AddAllowed) Valid() bool {
	switch a {
	case AddAllowedUnset, AddAllowedModerator, AddAllowedAdministrator:
		return true
	}
	return false
}

// Scope maps a site policy onto the selector value it displays.
// Unrecognized policies map to AddAllowedUnset.
func (p Policy) Scope() AddAllowed {
	switch p {
	case PolicyNoMod, PolicyYesMod:
		return AddAllowedModerator
	case PolicyNoAdmin, PolicyYesAdmin:
		return AddAllowedAdministrator
	default:
		return AddAllowedUnset
	}
}

// Valid reports whether p is a known site policy
func (p Policy) Valid() bool {
	switch p {
	case PolicyUnset, PolicyNoMod, PolicyYesMod, PolicyNoAdmin, PolicyYesAdmin:
		return true
	}
	return false
}

// Capabilities describes what the acting user may do
type Capabilities struct {
	IsAdministrator bool
}

// GroupRecord is a persisted group as returned by a store
type GroupRecord struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Public           bool       `json:"public"`
	AddToGroupPolicy Policy     `json:"addToGroupPolicy"`
	AddAllowed       AddAllowed `json:"addAllowed"`
	CreatedAt        time.Time  `json:"created"`
	UpdatedAt        time.Time  `json:"updated"`
}

// Clone returns a copy of the record
func (r *GroupRecord) Clone() *GroupRecord {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

// GroupFields is the field set submitted to a store.
// AddAllowed is nil when the selector was not part of the form.
type GroupFields struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Public      bool        `json:"public"`
	AddAllowed  *AddAllowed `json:"addAllowed,omitempty"`
}

// Apply copies the fields onto r
func (f GroupFields) Apply(r *GroupRecord) {
	r.Name = f.Name
	r.Description = f.Description
	r.Public = f.Public
	if f.AddAllowed != nil {
		r.AddAllowed = *f.AddAllowed
	}
}

// GroupDraft holds the form values while a dialog is open
type GroupDraft struct {
	Name             string
	Description      string
	IsPublic         bool
	AddAllowedPolicy AddAllowed
}

// HasAddAllowed reports whether the add-to-group selector is part of the form.
// It needs an administrator editing a record whose policy is recognized;
// create mode has no policy to show.
func HasAddAllowed(record *GroupRecord, caps Capabilities) bool {
	return caps.IsAdministrator && record != nil && record.AddToGroupPolicy.Scope() != AddAllowedUnset
}

// NewDraft seeds a draft from record, or returns an empty draft when record is nil.
// The policy is only carried when the selector is shown.
func NewDraft(record *GroupRecord, caps Capabilities) GroupDraft {
	if record == nil {
		return GroupDraft{}
	}
	d := GroupDraft{
		Name:        record.Name,
		Description: record.Description,
		IsPublic:    record.Public,
	}
	if HasAddAllowed(record, caps) {
		d.AddAllowedPolicy = record.AddToGroupPolicy.Scope()
	}
	return d
}

// FieldError is a save failure attributed to a single form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
