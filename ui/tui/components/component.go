package components

// Component is the contract for widgets embedded in a view. Widgets are
// driven by the MainModel and only need to size and draw themselves.
type Component interface {
	Resize(w, h int)
	View() string
}
