package handlers

import "github.com/oyenscilik/cms-admin/src/models"

// ScreenState is the explicit state of a CRUD screen. Encoding it as an enum
// instead of modal/visibility booleans rules out impossible combinations
// like an edit with no modal open. There is no submitting member: a mutation
// in flight is never rendered server-side, because the redirect-after-post
// cycle either redirects on success or re-renders as Creating/Editing on
// failure. The in-flight window exists only in the browser, where the form
// disables its submit control.
type ScreenState int

const (
	// StateIdle shows the list with no modal.
	StateIdle ScreenState = iota
	// StateCreating shows the modal bound to empty defaults.
	StateCreating
	// StateEditing shows the modal pre-filled from the selected record.
	StateEditing
)

// ModalOpen reports whether the screen renders its modal form.
func (s ScreenState) ModalOpen() bool {
	return s != StateIdle
}

// Toast is a transient notification shown once on the next render.
type Toast struct {
	Kind string // "success" or "error"
	Text string
}

// NavItem is a sidebar navigation entry.
type NavItem struct {
	Href   string
	Label  string
	Active bool
}

// navItems builds the sidebar for the active screen.
func navItems(active string) []NavItem {
	items := []NavItem{
		{Href: "/dashboard", Label: "Dashboard"},
		{Href: "/dashboard/admins", Label: "Admin Users"},
		{Href: "/dashboard/letters", Label: "Letters"},
		{Href: "/dashboard/numbers", Label: "Numbers"},
		{Href: "/dashboard/animals", Label: "Animals"},
	}
	for i := range items {
		items[i].Active = items[i].Href == active
	}
	return items
}

// PageData carries the fields every screen template needs. BasePath is the
// screen's own list URL; modal links and cancel buttons point back at it.
type PageData struct {
	Title      string
	BasePath   string
	Nav        []NavItem
	AdminName  string
	AdminEmail string
	Toasts     []Toast
}

// LetterForm holds the letter modal's field values, either empty defaults or
// the values the admin already typed (preserved across a failed submit).
type LetterForm struct {
	Letter        string
	LetterLower   string
	ExampleWord   string
	Pronunciation string
	AudioURL      string
	ImageURL      string
}

// NumberForm holds the number modal's field values.
type NumberForm struct {
	Value         string
	Word          string
	Pronunciation string
	AudioURL      string
	ImageURL      string
}

// AnimalForm holds the animal modal's field values.
type AnimalForm struct {
	Name        string
	NameEnglish string
	Description string
	FunFact     string
	Difficulty  string
	Emoji       string
	ImageURL    string
	AudioURL    string
}

// AdminForm holds the admin-user modal's field values. Password stays empty
// when editing unless the admin types a replacement.
type AdminForm struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// ConfirmDelete describes the blocking confirmation dialog.
type ConfirmDelete struct {
	ID    string
	Label string
}

// DashboardPage is the read-only aggregation view.
type DashboardPage struct {
	PageData
	LetterCount int
	NumberCount int
	AnimalCount int
	AdminCount  int
	Stats       models.DashboardStats
	Activity    []models.ActivityEntry
	TopLearners []models.TopLearner
}
