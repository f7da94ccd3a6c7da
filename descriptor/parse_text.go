package descriptor

import "strings"

// ParseText turns a type annotation's literal source text into a TypeExpr.
// It's a lightweight lexical parse (reference sigils, generics, tuples,
// path segments), not a grammar-aware one: good enough for Binder's
// path-resolution machinery, which only needs segments and a handle on
// whether a position is a reference/tuple/callable. Mirrors the shape of
// crates/llmcc-descriptor/src/types.rs's own text-driven fallback parsing.
func ParseText(lang LanguageKey, text string) *TypeExpr {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unknown("")
	}

	if rest, isMut, ok := stripReference(text); ok {
		return Reference(isMut, "", ParseText(lang, rest))
	}

	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		inner := text[1 : len(text)-1]
		parts := splitTopLevel(inner, ',')
		if len(parts) == 0 || (len(parts) == 1 && strings.TrimSpace(parts[0]) == "") {
			return Tuple()
		}
		items := make([]*TypeExpr, 0, len(parts))
		for _, p := range parts {
			items = append(items, ParseText(lang, p))
		}
		return Tuple(items...)
	}

	name, generics := splitGenerics(text)
	segs := splitPath(name)
	if len(segs) == 0 {
		return Opaque(lang, text)
	}
	var genericExprs []*TypeExpr
	for _, g := range generics {
		genericExprs = append(genericExprs, ParseText(lang, g))
	}
	return Path(segs, genericExprs...)
}

func stripReference(text string) (rest string, isMut bool, ok bool) {
	switch {
	case strings.HasPrefix(text, "&mut "):
		return strings.TrimSpace(text[5:]), true, true
	case strings.HasPrefix(text, "&"):
		return strings.TrimSpace(text[1:]), false, true
	case strings.HasPrefix(text, "*mut "):
		return strings.TrimSpace(text[5:]), true, true
	case strings.HasPrefix(text, "*const "):
		return strings.TrimSpace(text[7:]), false, true
	default:
		return text, false, false
	}
}

// splitGenerics splits "Name<A, B>" into ("Name", ["A", "B"]); text without
// angle brackets returns (text, nil).
func splitGenerics(text string) (string, []string) {
	open := strings.IndexByte(text, '<')
	if open < 0 || !strings.HasSuffix(text, ">") {
		return text, nil
	}
	name := text[:open]
	inner := text[open+1 : len(text)-1]
	return name, splitTopLevel(inner, ',')
}

// splitPath splits a "a::b::c" or "a.b.c" path into segments.
func splitPath(text string) []string {
	sep := "::"
	if !strings.Contains(text, "::") && strings.Contains(text, ".") {
		sep = "."
	}
	var segs []string
	for _, s := range strings.Split(text, sep) {
		s = strings.TrimSpace(s)
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// splitTopLevel splits s on sep, ignoring separators nested inside
// <>/()/[] so "Map<K, V>, int" splits into two parts, not three.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}
