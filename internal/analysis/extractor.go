package analysis

import "strings"

const fence = "```"

// ExtractJSON returns the candidate JSON payload embedded in a raw
// model reply. The model is not contractually guaranteed to return bare
// JSON: it may wrap it in a fenced code block with or without a
// language tag, or pad it with prose. Resolution order:
//
//  1. content of the first ```json fence
//  2. content of the first bare ``` fence
//  3. the first balanced {...} span
//  4. the trimmed reply unchanged
//
// No nested-fence handling; first match wins.
func ExtractJSON(raw string) string {
	if idx := strings.Index(raw, fence+"json"); idx >= 0 {
		rest := raw[idx+len(fence+"json"):]
		if end := strings.Index(rest, fence); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(raw, fence); idx >= 0 {
		rest := raw[idx+len(fence):]
		if end := strings.Index(rest, fence); end >= 0 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	if span := firstBraceSpan(raw); span != "" {
		return span
	}
	return strings.TrimSpace(raw)
}

// firstBraceSpan scans for the first balanced brace-delimited span,
// ignoring braces inside JSON strings.
func firstBraceSpan(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return ""
}
