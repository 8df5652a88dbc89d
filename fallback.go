package tqsm

// languageFallbacks routes identifiers the registry does not know to
// related registered languages, in preference order. The chains mirror the
// MediaWiki-style fallback relationships for the supported set; every chain
// is expected to reach a registered code eventually, but resolution guards
// against cycles regardless (see resolve).
var languageFallbacks = map[string][]string{
	"ab":      {"ru"},
	"af":      {"nl", "en"},
	"als":     {"de"},
	"an":      {"es"},
	"ast":     {"es"},
	"ba":      {"ru"},
	"be":      {"ru"},
	"br":      {"fr"},
	"ce":      {"ru"},
	"co":      {"it", "fr"},
	"cs":      {"sk", "en"},
	"cy":      {"en"},
	"eo":      {"en"},
	"fo":      {"da"},
	"fy":      {"nl"},
	"ga":      {"en"},
	"gl":      {"pt", "es"},
	"hr":      {"en"},
	"is":      {"da", "en"},
	"ja":      {"en"},
	"ko":      {"en"},
	"ky":      {"kk", "ru"},
	"lb":      {"de", "fr"},
	"mo":      {"ro", "en"},
	"nb":      {"no", "da", "en"},
	"nn":      {"nb", "no", "da"},
	"no":      {"nb", "da", "en"},
	"oc":      {"ca", "fr"},
	"os":      {"ru"},
	"rm":      {"de", "it"},
	"ro":      {"en"},
	"sco":     {"en"},
	"sv":      {"da", "en"},
	"tt":      {"ru"},
	"uk":      {"ru", "en"},
	"wa":      {"fr"},
	"zh":      {"zh-hans", "en"},
	"zh-hans": {"zh", "en"},
	"zh-hant": {"zh-hans", "en"},
}

// defaultFallbacks is consulted when an identifier has no configured chain.
// It is empty: an identifier absent from both the registry and the fallback
// table is a configuration mismatch and must surface as
// LanguageNotSupportedError rather than silently segment as some default
// language.
var defaultFallbacks []string
