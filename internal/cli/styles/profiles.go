package styles

import (
	"strconv"
	"time"

	"github.com/bnema/fontstack/internal/domain/entity"
)

const profileTimeFormat = "2006-01-02 15:04"

// ProfileRenderer renders stored profiles.
type ProfileRenderer struct {
	theme *Theme
}

// NewProfileRenderer creates a new profile renderer with the given theme.
func NewProfileRenderer(theme *Theme) *ProfileRenderer {
	return &ProfileRenderer{theme: theme}
}

// RenderList renders a table of profiles.
func (r *ProfileRenderer) RenderList(profiles []*entity.Profile) string {
	if len(profiles) == 0 {
		return r.theme.Subtle.Render("No saved profiles")
	}
	t := NewTable(r.theme, "Name", "Size", "Created", "Updated")
	for _, p := range profiles {
		t.Row(
			p.Name,
			strconv.Itoa(len(p.Document))+" B",
			p.CreatedAt.In(time.Local).Format(profileTimeFormat),
			p.UpdatedAt.In(time.Local).Format(profileTimeFormat),
		)
	}
	return t.Render()
}
