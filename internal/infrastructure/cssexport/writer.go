package cssexport

import (
	"strconv"
	"strings"
)

type decl struct {
	prop  string
	value string
}

// writer emits pretty-printed CSS. Compact output is derived from it.
type writer struct {
	b        strings.Builder
	comments bool
	started  bool
}

func (w *writer) separate() {
	if w.started {
		w.b.WriteString("\n")
	}
	w.started = true
}

func (w *writer) comment(lines ...string) {
	if !w.comments {
		return
	}
	w.separate()
	for _, l := range lines {
		w.b.WriteString("/* ")
		w.b.WriteString(strings.ReplaceAll(l, "*/", "* /"))
		w.b.WriteString(" */\n")
	}
}

func (w *writer) rule(selector string, decls []decl) {
	if len(decls) == 0 {
		return
	}
	w.separate()
	w.b.WriteString(selector)
	w.b.WriteString(" {\n")
	for _, d := range decls {
		w.b.WriteString("  ")
		w.b.WriteString(d.prop)
		w.b.WriteString(": ")
		w.b.WriteString(d.value)
		w.b.WriteString(";\n")
	}
	w.b.WriteString("}\n")
}

func (w *writer) String() string {
	return w.b.String()
}

// quote renders a CSS string.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n', '\r', '\f':
			b.WriteString(`\` + strconv.FormatInt(int64(r), 16) + " ")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
