package attr

import (
	"strings"
	"unicode"
)

var aliases = map[string]string{
	"cls":        "class",
	"className":  "class",
	"class_name": "class",
	"fr":         "for",
	"html_for":   "for",
	"htmlFor":    "for",
}

// prefixes whose keys are written with dashes in markup.
var dashPrefixes = []string{
	"data_",
	"aria_",
	"x_",
	"v_",
	"ng_",
	"hx_",
	"__",
	"ws__",
	"up_",
	"remove_me",
}

var directiveRewrites = strings.NewReplacer(
	"v-on:", "@",
	"v-on-", "@",
	"x-on:", "@",
	"x-on-", "@",
)

// Normalize maps an identifier-style key to its markup attribute name.
//
//	Normalize("className")   // "class"
//	Normalize("x_on_click")  // "@click"
//	Normalize("x_bind_href") // ":href"
//	Normalize("hx_get")      // "hx-get"
//	Normalize("xlink_href")  // "xlink:href"
//
// Keys already in markup syntax pass through unchanged.
func Normalize(key string) string {
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	if len(key) >= 2 && key[0] == '_' && key[1] != '_' {
		key = key[1:]
	}
	if key == "http_equiv" || hasDashPrefix(key) {
		key = rewriteDirective(key)
	}
	if first, _, found := strings.Cut(key, "_"); found {
		switch first {
		case "xlink", "xml", "xmlns":
			key = strings.Replace(key, "_", ":", 1)
		}
	}
	return key
}

func hasDashPrefix(key string) bool {
	for _, p := range dashPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func rewriteDirective(key string) string {
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, "--", ":")
	key = strings.ReplaceAll(key, "v-bind-", ":")
	key = strings.ReplaceAll(key, "v-bind", "")
	key = strings.ReplaceAll(key, "x-bind-", ":")
	key = strings.ReplaceAll(key, "x-bind", "")
	key = modifierColon(key, "x-transition-")
	key = modifierColon(key, "x-intersect-")
	key = directiveRewrites.Replace(key)
	return strings.ReplaceAll(key, "-dot-", ".")
}

// modifierColon turns "x-transition-enter" into "x-transition:enter" while
// leaving dotted modifiers ("x-transition-dot-opacity") for the -dot- rule.
func modifierColon(key, prefix string) string {
	i := strings.Index(key, prefix)
	if i < 0 || strings.HasPrefix(key[i+len(prefix):], "dot-") {
		return key
	}
	return key[:i] + prefix[:len(prefix)-1] + ":" + key[i+len(prefix):]
}

// NormalizeStyle maps an identifier-style key to a CSS property name:
// aliases and the leading underscore are handled as in Normalize, then
// underscores and camelCase humps become dashes ("backgroundColor" and
// "background_color" both give "background-color").
func NormalizeStyle(key string) string {
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	if len(key) >= 2 && key[0] == '_' && key[1] != '_' {
		key = key[1:]
	}
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '_':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
