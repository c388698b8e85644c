package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// CloneKind selects which language flag a cloned entry carries.
type CloneKind string

const (
	CloneLanguageSpecific CloneKind = "language-specific"
	ClonePrimaryOverride  CloneKind = "primary-override"
)

// BatchRejection records why one item of a batch was not applied.
type BatchRejection struct {
	Index int
	Name  string
	Err   error
}

// BatchResult summarizes AddFallbackBatch.
type BatchResult struct {
	Added      []FontID
	Augmented  []FontID
	Duplicates int
	Rejected   []BatchRejection
}

// FontRegistry is the ordered font stack. Index 0 holds the primary font once
// the registry is non-empty. Every mutation either applies fully or returns an
// error and leaves the registry untouched.
type FontRegistry struct {
	fonts  []*Font
	nextID uint64
}

// NewFontRegistry creates an empty registry.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{fonts: make([]*Font, 0)}
}

func (r *FontRegistry) newID() FontID {
	r.nextID++
	return FontID("font-" + strconv.FormatUint(r.nextID, 10))
}

// Len returns the number of entries.
func (r *FontRegistry) Len() int {
	return len(r.fonts)
}

// Fonts returns a copy of the entries in stack order.
func (r *FontRegistry) Fonts() []*Font {
	out := make([]*Font, len(r.fonts))
	for i, f := range r.fonts {
		out[i] = f.Clone()
	}
	return out
}

// Primary returns the primary font or nil for an empty registry.
func (r *FontRegistry) Primary() *Font {
	if len(r.fonts) == 0 || r.fonts[0].Role != RolePrimary {
		return nil
	}
	return r.fonts[0].Clone()
}

// Get returns the entry with the given id.
func (r *FontRegistry) Get(id FontID) (*Font, bool) {
	if i := r.IndexOf(id); i >= 0 {
		return r.fonts[i].Clone(), true
	}
	return nil, false
}

// Has reports whether id names a live entry.
func (r *FontRegistry) Has(id FontID) bool {
	return id != "" && r.IndexOf(id) >= 0
}

// IndexOf returns the stack position of id, or -1.
func (r *FontRegistry) IndexOf(id FontID) int {
	for i, f := range r.fonts {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// Load installs an uploaded font as the primary, replacing the current one.
// Clones of the previous primary stay in the stack. A generic fallback of the
// same file is promoted, keeping its id, instead of being duplicated.
func (r *FontRegistry) Load(name string, src UploadedSource) (FontID, error) {
	if src.Metadata == nil && strings.TrimSpace(src.FileName) == "" {
		return "", fmt.Errorf("load %q: no glyph data and no file name: %w", name, ErrInvalidPrimaryCandidate)
	}
	if twin := r.genericTwin(src.FileName); twin > 0 {
		f := r.fonts[twin]
		f.Source = augmentSource(f, src)
		f.Name = displayName(name, src)
		promote(f)
		rest := append(r.fonts[1:twin:twin], r.fonts[twin+1:]...)
		r.fonts = append([]*Font{f}, rest...)
		return f.ID, nil
	}
	f := &Font{
		ID:     r.newID(),
		Role:   RolePrimary,
		Name:   displayName(name, src),
		Source: src,
	}
	if r.Primary() == nil {
		r.fonts = append([]*Font{f}, r.fonts...)
		return f.ID, nil
	}
	r.fonts[0] = f
	return f.ID, nil
}

// AddFallback appends a generic fallback entry. Uploading a file that already
// exists with glyph data fails with ErrDuplicateFont; uploading over ghost
// entries fills them in place and returns the first ghost's id. The first font
// added to an empty registry becomes the primary.
func (r *FontRegistry) AddFallback(font *Font) (FontID, error) {
	id, _, err := r.addGeneric(font)
	return id, err
}

// AddFallbackBatch applies AddFallback to every font in order. Duplicates are
// skipped and counted; other rejections are reported per item.
func (r *FontRegistry) AddFallbackBatch(fonts []*Font) BatchResult {
	var res BatchResult
	for i, f := range fonts {
		id, augmented, err := r.addGeneric(f)
		switch {
		case err == nil && augmented:
			res.Augmented = append(res.Augmented, id)
		case err == nil:
			res.Added = append(res.Added, id)
		case ReasonOf(err) == ReasonDuplicateFont:
			res.Duplicates++
		default:
			name := ""
			if f != nil {
				name = f.Name
			}
			res.Rejected = append(res.Rejected, BatchRejection{Index: i, Name: name, Err: err})
		}
	}
	return res
}

func (r *FontRegistry) addGeneric(font *Font) (FontID, bool, error) {
	if err := validateNewFont(font); err != nil {
		return "", false, err
	}
	if font.IsSystem() {
		key := font.NormalizedName()
		for _, f := range r.fonts {
			if f.IsSystem() && f.NormalizedName() == key {
				return "", false, fmt.Errorf("system font %q: %w", font.Name, ErrDuplicateFont)
			}
		}
		if len(r.fonts) == 0 {
			return "", false, fmt.Errorf("system font %q: %w", font.Name, ErrInvalidPrimaryCandidate)
		}
		id := r.append(font, RoleFallback, "")
		return id, false, nil
	}

	src, _ := font.Uploaded()
	ghosts, live := r.uploadedMatches(FileKey(src.FileName))
	if len(live) > 0 || (len(ghosts) > 0 && src.Metadata == nil) {
		return "", false, fmt.Errorf("font file %q: %w", src.FileName, ErrDuplicateFont)
	}
	if len(ghosts) > 0 {
		for _, i := range ghosts {
			r.fonts[i].Source = augmentSource(r.fonts[i], src)
		}
		return r.fonts[ghosts[0]].ID, true, nil
	}

	role := RoleFallback
	if r.Primary() == nil {
		role = RolePrimary
	}
	return r.append(font, role, ""), false, nil
}

// AddLanguageFont adds a font that only serves pinned languages. An existing
// entry with the same identity and kind is reused (and filled in if it is a
// ghost); otherwise a new flagged entry is appended, sharing glyph data with a
// live twin when the caller supplies none.
func (r *FontRegistry) AddLanguageFont(font *Font, kind CloneKind) (FontID, error) {
	if err := validateNewFont(font); err != nil {
		return "", err
	}
	if err := validateCloneKind(kind); err != nil {
		return "", err
	}
	if len(r.fonts) == 0 {
		return "", fmt.Errorf("language font %q without a primary: %w", font.Name, ErrInvalidPrimaryCandidate)
	}
	if kind == ClonePrimaryOverride && font.IsSystem() {
		return "", fmt.Errorf("system font %q as primary override: %w", font.Name, ErrInvalidPrimaryCandidate)
	}

	for _, f := range r.fonts {
		if !sameIdentity(f, font) || cloneKindOf(f) != kind {
			continue
		}
		if f.IsGhost() && font.HasGlyphData() {
			src, _ := font.Uploaded()
			f.Source = augmentSource(f, src)
		}
		return f.ID, nil
	}

	next := font.Clone()
	if next.IsUploaded() && !next.HasGlyphData() {
		for _, f := range r.fonts {
			if sameIdentity(f, next) && f.HasGlyphData() {
				src, _ := next.Uploaded()
				next.Source = augmentSource(f, src)
				break
			}
		}
	}
	return r.append(next, RoleFallback, kind), nil
}

// Clone duplicates an existing entry as a language clone of the given kind.
func (r *FontRegistry) Clone(id FontID, kind CloneKind) (FontID, error) {
	if err := validateCloneKind(kind); err != nil {
		return "", err
	}
	i := r.IndexOf(id)
	if i < 0 {
		return "", fmt.Errorf("clone %s: %w", id, ErrFontNotFound)
	}
	src := r.fonts[i]
	if kind == ClonePrimaryOverride && src.IsSystem() {
		return "", fmt.Errorf("clone system font %q as primary override: %w", src.Name, ErrInvalidPrimaryCandidate)
	}
	return r.append(src, RoleFallback, kind), nil
}

func (r *FontRegistry) append(font *Font, role FontRole, kind CloneKind) FontID {
	f := font.Clone()
	f.ID = r.newID()
	f.Role = role
	f.IsLanguageSpecific = kind == CloneLanguageSpecific
	f.IsPrimaryOverride = kind == ClonePrimaryOverride
	if f.IsUploaded() {
		src, _ := f.Uploaded()
		f.Name = displayName(f.Name, src)
	} else {
		f.Source = SystemSource{}
	}
	r.fonts = append(r.fonts, f)
	return f.ID
}

// Remove deletes the entry and every entry sharing its identity (its language
// clones). Removing the primary promotes the first remaining uploaded font.
func (r *FontRegistry) Remove(id FontID) ([]FontID, error) {
	i := r.IndexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("remove %s: %w", id, ErrFontNotFound)
	}
	target := r.fonts[i]

	var removed []FontID
	remaining := make([]*Font, 0, len(r.fonts))
	primaryRemoved := false
	for _, f := range r.fonts {
		if sameIdentity(f, target) {
			removed = append(removed, f.ID)
			if f.Role == RolePrimary {
				primaryRemoved = true
			}
			continue
		}
		remaining = append(remaining, f)
	}
	if len(remaining) == 0 {
		return nil, fmt.Errorf("remove %q: %w", target.Name, ErrCannotRemoveLastFont)
	}

	if primaryRemoved {
		next := promotionCandidate(remaining)
		if next < 0 {
			return nil, fmt.Errorf("remove %q: no remaining font can be primary: %w", target.Name, ErrInvalidPrimaryCandidate)
		}
		head := remaining[next]
		remaining = append(remaining[:next:next], remaining[next+1:]...)
		remaining = append([]*Font{head}, remaining...)
		promote(head)
	}

	r.fonts = remaining
	return removed, nil
}

func promotionCandidate(fonts []*Font) int {
	fallback := -1
	for i, f := range fonts {
		if f.IsSystem() {
			continue
		}
		if f.IsGeneric() {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	return fallback
}

// Reorder moves the entry at from to position to. When the move changes what
// sits at index 0, the new head must be an uploaded font. Moving into index 0
// swaps: the promoted entry becomes primary and the previous primary takes the
// vacated position as an ordinary fallback.
func (r *FontRegistry) Reorder(from, to int) error {
	n := len(r.fonts)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("reorder %d -> %d of %d: %w", from, to, n, ErrIndexOutOfRange)
	}
	if from == to {
		return nil
	}

	switch {
	case to == 0:
		candidate := r.fonts[from]
		if candidate.IsSystem() {
			return fmt.Errorf("promote system font %q: %w", candidate.Name, ErrInvalidPrimaryCandidate)
		}
		previous := r.fonts[0]
		r.fonts[0], r.fonts[from] = candidate, previous
		previous.Role = RoleFallback
		promote(candidate)
	case from == 0:
		candidate := r.fonts[1]
		if candidate.IsSystem() {
			return fmt.Errorf("promote system font %q: %w", candidate.Name, ErrInvalidPrimaryCandidate)
		}
		previous := r.fonts[0]
		r.move(from, to)
		previous.Role = RoleFallback
		promote(candidate)
	default:
		r.move(from, to)
	}
	return nil
}

func (r *FontRegistry) move(from, to int) {
	f := r.fonts[from]
	r.fonts = append(r.fonts[:from], r.fonts[from+1:]...)
	r.fonts = append(r.fonts[:to], append([]*Font{f}, r.fonts[to:]...)...)
}

func promote(f *Font) {
	f.Role = RolePrimary
	f.IsLanguageSpecific = false
	f.IsPrimaryOverride = false
}

// SetPrimary promotes id to index 0. It is Reorder(IndexOf(id), 0).
func (r *FontRegistry) SetPrimary(id FontID) error {
	i := r.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("set primary %s: %w", id, ErrFontNotFound)
	}
	return r.Reorder(i, 0)
}

// ToggleGlobalFallbackStatus returns a language-specific entry to the general
// fallback pool. Generic entries are left as they are.
func (r *FontRegistry) ToggleGlobalFallbackStatus(id FontID) error {
	i := r.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("toggle %s: %w", id, ErrFontNotFound)
	}
	r.fonts[i].IsLanguageSpecific = false
	return nil
}

// Rename changes the display name. System fonts stay unique by normalized name.
func (r *FontRegistry) Rename(id FontID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("rename %s to empty name: %w", id, ErrInvalidValue)
	}
	i := r.IndexOf(id)
	if i < 0 {
		return fmt.Errorf("rename %s: %w", id, ErrFontNotFound)
	}
	target := r.fonts[i]
	if target.IsSystem() {
		key := NormalizeFontName(name)
		for _, f := range r.fonts {
			if f.ID != id && f.IsSystem() && f.NormalizedName() == key {
				return fmt.Errorf("rename %q to %q: %w", target.Name, name, ErrDuplicateFont)
			}
		}
	}
	target.Name = name
	return nil
}

// Find returns entries whose identity key matches key, in stack order.
func (r *FontRegistry) Find(key string) []*Font {
	var out []*Font
	for _, f := range r.fonts {
		if f.IdentityKey() == key {
			out = append(out, f.Clone())
		}
	}
	return out
}

// genericTwin returns the index of the generic uploaded fallback stored under
// fileName, or -1. The primary slot is not considered.
func (r *FontRegistry) genericTwin(fileName string) int {
	key := FileKey(fileName)
	if key == "" {
		return -1
	}
	for i, f := range r.fonts {
		if f.Role == RolePrimary || !f.IsUploaded() || !f.IsGeneric() {
			continue
		}
		if f.IdentityKey() == key {
			return i
		}
	}
	return -1
}

func (r *FontRegistry) uploadedMatches(key string) (ghosts, live []int) {
	for i, f := range r.fonts {
		if !f.IsUploaded() || f.IdentityKey() != key {
			continue
		}
		if f.HasGlyphData() {
			live = append(live, i)
		} else {
			ghosts = append(ghosts, i)
		}
	}
	return ghosts, live
}

func sameIdentity(a, b *Font) bool {
	return a.IsSystem() == b.IsSystem() && a.IdentityKey() == b.IdentityKey()
}

func cloneKindOf(f *Font) CloneKind {
	switch {
	case f.IsPrimaryOverride:
		return ClonePrimaryOverride
	case f.IsLanguageSpecific:
		return CloneLanguageSpecific
	}
	return ""
}

// augmentSource merges an incoming upload into an existing entry's source,
// keeping the existing file name and URL unless the upload brings new ones.
func augmentSource(existing *Font, incoming UploadedSource) UploadedSource {
	src, _ := existing.Uploaded()
	if incoming.Metadata != nil {
		src.Metadata = incoming.Metadata
	}
	if incoming.URL != "" {
		src.URL = incoming.URL
	}
	if src.FileName == "" {
		src.FileName = incoming.FileName
	}
	return src
}

func validateNewFont(font *Font) error {
	if font == nil {
		return fmt.Errorf("nil font: %w", ErrInvalidValue)
	}
	if font.IsSystem() {
		if strings.TrimSpace(font.Name) == "" {
			return fmt.Errorf("system font without a name: %w", ErrInvalidValue)
		}
		return nil
	}
	if strings.TrimSpace(font.FileName()) == "" {
		return fmt.Errorf("uploaded font %q without a file name: %w", font.Name, ErrInvalidValue)
	}
	return nil
}

func validateCloneKind(kind CloneKind) error {
	switch kind {
	case CloneLanguageSpecific, ClonePrimaryOverride:
		return nil
	}
	return fmt.Errorf("clone kind %q: %w", kind, ErrInvalidValue)
}

func displayName(name string, src UploadedSource) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	if src.Metadata != nil && src.Metadata.FamilyName != "" {
		return src.Metadata.FamilyName
	}
	return stripFontExt(strings.TrimSpace(src.FileName))
}
