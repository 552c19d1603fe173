package groupedit

import "groupedit/internal/domain"

// Field identifies a focusable form element
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldPrivacy     Field = "public"
	FieldAddAllowed  Field = "addAllowed"
	FieldSave        Field = "save"
)

// FieldFromKey maps a store error field onto a form field.
// ok is false for names the form does not have.
func FieldFromKey(key string) (Field, bool) {
	switch Field(key) {
	case FieldName, FieldDescription, FieldPrivacy, FieldAddAllowed:
		return Field(key), true
	}
	return "", false
}

// Privacy radio values
const (
	PrivacyPrivate = "private"
	PrivacyPublic  = "public"
)

// RadioOption is one entry of the privacy radio group
type RadioOption struct {
	Value    string
	Label    string
	Checked  bool
	Selected bool // visual highlight, synced from Checked by PrivacyChanged
}

// PolicySelector is the add-to-group selector shown to administrators
// editing a group with a recognized policy
type PolicySelector struct {
	Options  []domain.AddAllowed
	Selected domain.AddAllowed
}

// FormState is the controller-owned part of the form that is not draft data
type FormState struct {
	Privacy           []RadioOption
	SaveEnabled       bool
	ValidationMessage string
	Focus             Field
}

// ViewModel is everything a host needs to draw the dialog
type ViewModel struct {
	Mode              domain.Mode
	Title             string
	Name              string
	Description       string
	Public            bool
	Privacy           []RadioOption
	AddPolicy         *PolicySelector // nil when the selector is not part of the form
	SaveEnabled       bool
	ValidationMessage string
	Focus             Field
}

// FocusOrder lists the focusable fields of vm in tab order
func (vm ViewModel) FocusOrder() []Field {
	order := []Field{FieldName, FieldDescription, FieldPrivacy}
	if vm.AddPolicy != nil {
		order = append(order, FieldAddAllowed)
	}
	return append(order, FieldSave)
}

// BuildViewModel derives the view model without touching any state.
// A nil record means create mode.
func BuildViewModel(record *domain.GroupRecord, draft domain.GroupDraft, caps domain.Capabilities, form FormState) ViewModel {
	vm := ViewModel{
		Mode:              domain.ModeCreate,
		Title:             "Create group",
		Name:              draft.Name,
		Description:       draft.Description,
		Public:            draft.IsPublic,
		Privacy:           append([]RadioOption(nil), form.Privacy...),
		SaveEnabled:       form.SaveEnabled,
		ValidationMessage: form.ValidationMessage,
		Focus:             form.Focus,
	}
	if record != nil {
		vm.Mode = domain.ModeEdit
		vm.Title = "Edit group"
	}
	if domain.HasAddAllowed(record, caps) {
		vm.AddPolicy = &PolicySelector{
			Options:  domain.AddAllowedOptions,
			Selected: draft.AddAllowedPolicy,
		}
	}
	return vm
}

// privacyOptions builds the radio group with the matching option checked
func privacyOptions(public bool) []RadioOption {
	return []RadioOption{
		{Value: PrivacyPrivate, Label: "Private", Checked: !public},
		{Value: PrivacyPublic, Label: "Public", Checked: public},
	}
}
