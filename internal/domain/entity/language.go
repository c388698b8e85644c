package entity

// LanguageID identifies a catalog language, e.g. "en-US" or "ja-JP".
type LanguageID string

// DefaultPrimaryLanguage is used when no primary language is configured.
const DefaultPrimaryLanguage LanguageID = "en-US"

// ScriptGroup groups languages sharing a writing system.
type ScriptGroup string

const (
	ScriptLatin      ScriptGroup = "latin"
	ScriptCyrillic   ScriptGroup = "cyrillic"
	ScriptGreek      ScriptGroup = "greek"
	ScriptArabic     ScriptGroup = "arabic"
	ScriptHebrew     ScriptGroup = "hebrew"
	ScriptDevanagari ScriptGroup = "devanagari"
	ScriptCJK        ScriptGroup = "cjk"
	ScriptThai       ScriptGroup = "thai"
	ScriptOther      ScriptGroup = "other"
)

// Language is one entry of the language catalog.
type Language struct {
	ID             LanguageID
	Name           string
	Code           string // BCP 47 tag used for the lang attribute
	Group          ScriptGroup
	CanonicalIndex int
}

// LanguageSet is an ordered set of language ids.
type LanguageSet struct {
	ids []LanguageID
}

// NewLanguageSet builds a set, dropping empty ids and duplicates.
func NewLanguageSet(ids ...LanguageID) *LanguageSet {
	s := &LanguageSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add appends id if absent. It reports whether the set changed.
func (s *LanguageSet) Add(id LanguageID) bool {
	if id == "" || s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id. It reports whether the set changed.
func (s *LanguageSet) Remove(id LanguageID) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports membership.
func (s *LanguageSet) Contains(id LanguageID) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs returns the members in insertion order.
func (s *LanguageSet) IDs() []LanguageID {
	out := make([]LanguageID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of members.
func (s *LanguageSet) Len() int {
	return len(s.ids)
}
