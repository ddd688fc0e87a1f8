package types

import (
	"fmt"
	"strings"
)

// Notice codes emitted by Lint. These never affect Compile/CompiledSize/
// CompileError; they are purely advisory.
const (
	NoticeNumericUsagePage  = "numeric-usage-page"  // a raw page number keeps later Usage items from using names
	NoticeOversizedLiteral  = "oversized-literal"   // a bare literal written with leading zeros that do not widen its encoding
	NoticeRedundantPushPop  = "redundant-push-pop"  // Push immediately followed by Pop with nothing in between
	NoticeDelimiterByNumber = "delimiter-by-number" // Delimiter(0)/Delimiter(1) used instead of the named form
)

// String renders a Notice as "[code] message".
func (n Notice) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(n.Code)
	b.WriteByte(']')
	b.WriteByte(' ')
	b.WriteString(n.Message)
	return b.String()
}

// NewNotice builds a Notice at the given span.
func NewNotice(severity int, code string, span Span, format string, args ...any) Notice {
	return Notice{Severity: severity, Code: code, Span: span, Message: fmt.Sprintf(format, args...)}
}

// MatchGlob performs simple glob matching with a single leading or
// trailing * wildcard, used to filter notices by code pattern.
func MatchGlob(pattern, s string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(s, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(s, suffix)
	}
	return pattern == s
}
