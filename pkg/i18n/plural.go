package i18n

// PluralRule maps a count to a CLDR plural category.
type PluralRule func(n int) string

// Plural categories. A message chooses among them with nested keys:
//
//	{"items": {"one": "{{count}} item", "other": "{{count}} items"}}
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// englishRule: zero, one, other.
func englishRule(n int) string {
	switch abs(n) {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	}
	return PluralOther
}

// slavicRule: zero, one, few, many.
func slavicRule(n int) string {
	a := abs(n)
	switch {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a%10 >= 2 && a%10 <= 4 && (a%100 < 12 || a%100 > 14):
		return PluralFew
	}
	return PluralMany
}

// romanceRule: one covers zero too; many from a million.
func romanceRule(n int) string {
	a := abs(n)
	switch {
	case a <= 1:
		return PluralOne
	case a >= 1_000_000:
		return PluralMany
	}
	return PluralOther
}

func spanishRule(n int) string {
	a := abs(n)
	switch {
	case a == 1:
		return PluralOne
	case a >= 1_000_000:
		return PluralMany
	}
	return PluralOther
}

func germanicRule(n int) string {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

func invariantRule(int) string { return PluralOther }

func arabicRule(n int) string {
	a := abs(n)
	switch {
	case a == 0:
		return PluralZero
	case a == 1:
		return PluralOne
	case a == 2:
		return PluralTwo
	case a%100 >= 3 && a%100 <= 10:
		return PluralFew
	case a%100 >= 11:
		return PluralMany
	}
	return PluralOther
}

var pluralRules = map[string]PluralRule{
	"en": englishRule,
	"ar": arabicRule,
	"es": spanishRule,
}

func init() {
	for _, lang := range []string{"pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg"} {
		pluralRules[lang] = slavicRule
	}
	for _, lang := range []string{"fr", "it", "pt"} {
		pluralRules[lang] = romanceRule
	}
	for _, lang := range []string{"de", "nl", "sv", "no", "da", "is"} {
		pluralRules[lang] = germanicRule
	}
	for _, lang := range []string{"ja", "zh", "ko", "th", "vi", "id", "ms"} {
		pluralRules[lang] = invariantRule
	}
}

// PluralRuleFor returns the plural rule for a locale's language.
// Unknown languages use the English rule.
func PluralRuleFor(locale string) PluralRule {
	if rule, ok := pluralRules[LanguageOf(locale)]; ok {
		return rule
	}
	return englishRule
}

// PluralForm returns the plural category of n for locale.
func PluralForm(locale string, n int) string {
	return PluralRuleFor(locale)(n)
}

// pluralFallbacks lists the categories tried when a message lacks form.
func pluralFallbacks(form string) []string {
	switch form {
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	case PluralOther:
		return nil
	}
	return []string{PluralOther}
}
