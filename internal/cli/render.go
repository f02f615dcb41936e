package cli

import (
	"fmt"
	"strings"
)

// render prints the whole view the way it looks after mount.
func (a *App) render() {
	s := a.ctrl.Snapshot()
	if s.CatURL != "" {
		a.println("Cat:", s.CatURL)
	} else {
		a.println("Cat: (none)")
	}
	a.renderSession()
	a.renderRecords()
	a.renderImages()
}

func (a *App) renderSession() {
	if s := a.ctrl.Snapshot().Session; s != nil {
		a.println("Signed in as", s.Email)
		return
	}
	a.println("Not signed in")
}

func (a *App) renderRecords() {
	recs := a.ctrl.Snapshot().Records
	if len(recs) == 0 {
		a.println(fmt.Sprintf("No %s", a.collection))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", a.collection)
	for _, r := range recs {
		fmt.Fprintf(&b, "  %s  %s\n", r.ID, r.Name)
	}
	a.println(strings.TrimRight(b.String(), "\n"))
}

func (a *App) renderImages() {
	imgs := a.ctrl.Images()
	if len(imgs) == 0 {
		a.println("No images")
		return
	}

	var b strings.Builder
	b.WriteString("Images:\n")
	for _, img := range imgs {
		fmt.Fprintf(&b, "  %s\n", img.URL)
	}
	a.println(strings.TrimRight(b.String(), "\n"))
}

// renderBoard prints the grid three cells per row. Editable cells are shown
// in brackets and marked with * while they match.
func (a *App) renderBoard() {
	cells := a.ctrl.Snapshot().Board.Cells()

	var b strings.Builder
	for i, c := range cells {
		v := c.Value
		if v == "" {
			v = " "
		}
		switch {
		case !c.Editable:
			fmt.Fprintf(&b, "  %s  ", v)
		case a.ctrl.Highlighted(c.Name):
			fmt.Fprintf(&b, " [%s]*", v)
		default:
			fmt.Fprintf(&b, " [%s] ", v)
		}
		if i%3 == 2 {
			b.WriteString("\n")
		}
	}
	a.println(strings.TrimRight(b.String(), "\n"))
}
