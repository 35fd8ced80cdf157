package optcg

// Language codes accepted by locale sources. Each maps to one locale
// table file shipped with the vendor configuration.
const (
	LangEnglish           = "en"
	LangEnglishAsia       = "en_asia"
	LangJapanese          = "jp"
	LangChineseSimplified = "zh_cn"
	LangChineseHongKong   = "zh_hk"
	LangChineseTaiwan     = "zh_tw"
	LangThai              = "th"
)

// Languages lists every supported language code.
var Languages = []string{
	LangEnglish,
	LangEnglishAsia,
	LangJapanese,
	LangChineseSimplified,
	LangChineseHongKong,
	LangChineseTaiwan,
	LangThai,
}

// Locale maps canonical keys to the display strings one vendor site uses
// for them. It is loaded once at startup and read-only afterwards, so it
// may be shared across concurrent extractions without locking.
type Locale struct {
	// Hostname of the vendor site this locale scrapes.
	Hostname string `toml:"hostname"`

	Colors     map[string]string `toml:"colors"`
	Attributes map[string]string `toml:"attributes"`
	Categories map[string]string `toml:"categories"`
	Rarities   map[string]string `toml:"rarities"`
}

// reverseSearch returns the canonical key whose display string equals
// value. Exact equality only; callers normalize whitespace beforehand.
func reverseSearch(m map[string]string, value string) (string, bool) {
	for key, display := range m {
		if display == value {
			return key, true
		}
	}
	return "", false
}

// MatchColor returns the canonical color key for a localized display string.
func (l *Locale) MatchColor(value string) (string, bool) {
	return reverseSearch(l.Colors, value)
}

// MatchAttribute returns the canonical attribute key for a localized display string.
func (l *Locale) MatchAttribute(value string) (string, bool) {
	return reverseSearch(l.Attributes, value)
}

// MatchCategory returns the canonical category key for a localized display string.
func (l *Locale) MatchCategory(value string) (string, bool) {
	return reverseSearch(l.Categories, value)
}

// MatchRarity returns the canonical rarity key for a localized display string.
func (l *Locale) MatchRarity(value string) (string, bool) {
	return reverseSearch(l.Rarities, value)
}

// Validate returns an error if the locale is missing the hostname or any
// canonical key the enum parsers require. A missing key is a load-time
// error so extraction never discovers an incomplete table mid-parse.
func (l *Locale) Validate() error {
	if l.Hostname == "" {
		return Errorf(EINVALID, "locale hostname required")
	}
	for _, c := range Colors {
		if _, ok := l.Colors[string(c)]; !ok {
			return Errorf(EINVALID, "locale missing color key %q", c)
		}
	}
	for _, a := range Attributes {
		if _, ok := l.Attributes[string(a)]; !ok {
			return Errorf(EINVALID, "locale missing attribute key %q", a)
		}
	}
	for _, c := range Categories {
		if _, ok := l.Categories[string(c)]; !ok {
			return Errorf(EINVALID, "locale missing category key %q", c)
		}
	}
	for _, r := range Rarities {
		if _, ok := l.Rarities[string(r)]; !ok {
			return Errorf(EINVALID, "locale missing rarity key %q", r)
		}
	}
	return nil
}

// LocaleSource loads locale tables by language code.
// Implementations hide where the tables live (files, embedded data).
type LocaleSource interface {
	// Load returns the validated locale for a language code.
	// Returns ENOTFOUND if no table exists for the code.
	Load(lang string) (*Locale, error)

	// List returns the language codes the source can load.
	List() ([]string, error)
}
