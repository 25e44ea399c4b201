// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package generate

import (
	"hash/fnv"
	"strings"
)

// DefaultLanguage is the language whose value anchors a field family.
const DefaultLanguage = "en"

// langCodes are the recognized field-name language suffixes.
var langCodes = map[string]struct{}{
	"en": {}, "ar": {}, "fr": {}, "es": {}, "de": {}, "it": {}, "pt": {},
	"ru": {}, "tr": {}, "zh": {}, "ja": {}, "ko": {}, "nl": {}, "sv": {},
	"fa": {}, "ur": {}, "hi": {}, "he": {},
}

// SplitLang detects a language-suffixed field name like "status_ar" and
// returns the base name and language code. ok is false when the name carries
// no recognized suffix.
func SplitLang(name string) (base, code string, ok bool) {
	i := strings.LastIndexByte(name, '_')
	if i <= 0 || i == len(name)-1 {
		return "", "", false
	}
	suffix := strings.ToLower(name[i+1:])
	if _, known := langCodes[suffix]; !known {
		return "", "", false
	}
	return name[:i], suffix, true
}

// langTables are the parallel lookup tables: for each category, every
// language's table has the same length, so one index describes the same
// underlying choice in every language.
var langTables = map[string]map[string][]string{
	"status": {
		"en": {"Active", "Inactive", "Pending", "Suspended", "Closed", "Archived"},
		"ar": {"نشط", "غير نشط", "قيد الانتظار", "معلق", "مغلق", "مؤرشف"},
		"fr": {"Actif", "Inactif", "En attente", "Suspendu", "Fermé", "Archivé"},
		"es": {"Activo", "Inactivo", "Pendiente", "Suspendido", "Cerrado", "Archivado"},
		"de": {"Aktiv", "Inaktiv", "Ausstehend", "Gesperrt", "Geschlossen", "Archiviert"},
	},
	"city": {
		"en": {"Cairo", "Dubai", "Paris", "Berlin", "Madrid", "London", "Riyadh", "Rome"},
		"ar": {"القاهرة", "دبي", "باريس", "برلين", "مدريد", "لندن", "الرياض", "روما"},
		"fr": {"Le Caire", "Dubaï", "Paris", "Berlin", "Madrid", "Londres", "Riyad", "Rome"},
		"es": {"El Cairo", "Dubái", "París", "Berlín", "Madrid", "Londres", "Riad", "Roma"},
		"de": {"Kairo", "Dubai", "Paris", "Berlin", "Madrid", "London", "Riad", "Rom"},
	},
	"country": {
		"en": {"Egypt", "United Arab Emirates", "France", "Germany", "Spain", "United Kingdom"},
		"ar": {"مصر", "الإمارات العربية المتحدة", "فرنسا", "ألمانيا", "إسبانيا", "المملكة المتحدة"},
		"fr": {"Égypte", "Émirats arabes unis", "France", "Allemagne", "Espagne", "Royaume-Uni"},
		"es": {"Egipto", "Emiratos Árabes Unidos", "Francia", "Alemania", "España", "Reino Unido"},
		"de": {"Ägypten", "Vereinigte Arabische Emirate", "Frankreich", "Deutschland", "Spanien", "Vereinigtes Königreich"},
	},
	"name": {
		"en": {"Ahmed Hassan", "Maria Garcia", "John Smith", "Fatima Ali", "Hans Weber", "Claire Martin"},
		"ar": {"أحمد حسن", "ماريا غارسيا", "جون سميث", "فاطمة علي", "هانز فيبر", "كلير مارتن"},
		"fr": {"Ahmed Hassan", "Maria Garcia", "John Smith", "Fatima Ali", "Hans Weber", "Claire Martin"},
		"es": {"Ahmed Hassan", "María García", "John Smith", "Fátima Alí", "Hans Weber", "Claire Martin"},
		"de": {"Ahmed Hassan", "Maria Garcia", "John Smith", "Fatima Ali", "Hans Weber", "Claire Martin"},
	},
	"generic": {
		"en": {"Alpha", "Bravo", "Delta", "Omega", "Sierra", "Victor", "Zulu", "Echo"},
		"ar": {"ألفا", "برافو", "دلتا", "أوميغا", "سييرا", "فيكتور", "زولو", "إيكو"},
		"fr": {"Alpha", "Bravo", "Delta", "Oméga", "Sierra", "Victor", "Zoulou", "Écho"},
		"es": {"Alfa", "Bravo", "Delta", "Omega", "Sierra", "Víctor", "Zulú", "Eco"},
		"de": {"Alpha", "Bravo", "Delta", "Omega", "Sierra", "Viktor", "Zulu", "Echo"},
	},
}

// tableCategory selects the lookup table family for a base field name.
func tableCategory(base string) string {
	lower := strings.ToLower(base)
	switch {
	case strings.Contains(lower, "status") || strings.Contains(lower, "state"):
		return "status"
	case strings.Contains(lower, "city"):
		return "city"
	case strings.Contains(lower, "country") || strings.Contains(lower, "nationality"):
		return "country"
	case strings.Contains(lower, "name"):
		return "name"
	default:
		return "generic"
	}
}

// langState is the per-document language context: one shared seed per field
// family, plus the cached default-language value for each family. It lives
// for a single document generation and is discarded afterward.
type langState struct {
	seeds    map[string]uint64
	defaults map[string]string
}

func newLangState() *langState {
	return &langState{
		seeds:    make(map[string]uint64),
		defaults: make(map[string]string),
	}
}

// seedFor returns the family seed, deriving one from the cached
// default-language value when no seed was assigned up front.
func (ls *langState) seedFor(base string) (uint64, bool) {
	if seed, ok := ls.seeds[base]; ok {
		return seed, true
	}
	if def, ok := ls.defaults[base]; ok {
		h := fnv.New64a()
		h.Write([]byte(def)) //nolint:errcheck
		seed := h.Sum64()
		ls.seeds[base] = seed
		return seed, true
	}
	return 0, false
}

// valueFor renders the field family's choice in the given language. Every
// language's table is indexed by the same seed-derived position, so all
// translations of a family describe the same underlying entity. Languages
// without a table fall back to the default language.
func (ls *langState) valueFor(base, code string) (string, bool) {
	seed, ok := ls.seedFor(base)
	if !ok {
		return "", false
	}

	tables := langTables[tableCategory(base)]
	table, ok := tables[code]
	if !ok {
		table = tables[DefaultLanguage]
	}

	value := table[seed%uint64(len(table))]
	if code == DefaultLanguage {
		ls.defaults[base] = value
	}
	return value, true
}
