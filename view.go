package skilledhelpers

import "strings"

// View identifies a screen of the application.
type View string

// View constants.
const (
	ViewHome     View = "home"
	ViewProducts View = "products"
	ViewOthers   View = "others"
	ViewAbout    View = "about"
)

// Views returns every view in navigation order.
func Views() []View {
	return []View{ViewHome, ViewProducts, ViewOthers, ViewAbout}
}

// ParseView resolves s to a view. Unknown names fall back to ViewHome.
func ParseView(s string) View {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewHome, ViewProducts, ViewOthers, ViewAbout:
		return v
	}
	return ViewHome
}
