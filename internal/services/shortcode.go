package services

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/sbilibin2017/rdrx/internal/models"
)

// ShortcodeKind is the route a path segment dispatches to.
type ShortcodeKind int

const (
	// KindPlain is a redirect or, failing that, a bio page.
	KindPlain ShortcodeKind = iota
	// KindForm is a protected create/snippet/upload form.
	KindForm
	KindSnippet
	KindFile
)

func (k ShortcodeKind) String() string {
	switch k {
	case KindForm:
		return "form"
	case KindSnippet:
		return "snippet"
	case KindFile:
		return "file"
	default:
		return "plain"
	}
}

var formRoutes = map[string]bool{
	"create":  true,
	"snippet": true,
	"upload":  true,
}

// reservedWords can never be used as custom codes or bio handles.
var reservedWords = map[string]bool{
	"create":         true,
	"snippet":        true,
	"upload":         true,
	"login":          true,
	"signup":         true,
	"logout":         true,
	"reset-password": true,
	"api":            true,
	"swagger":        true,
	"dashboard":      true,
	"healthz":        true,
}

// Classify maps a path segment to its route. Form words are matched exactly
// and take precedence over the prefixes.
func Classify(segment string) ShortcodeKind {
	switch {
	case formRoutes[segment]:
		return KindForm
	case IsSnippetShortcode(segment):
		return KindSnippet
	case IsFileShortcode(segment):
		return KindFile
	default:
		return KindPlain
	}
}

func IsSnippetShortcode(s string) bool {
	return strings.HasPrefix(s, models.SnippetPrefix)
}

func IsFileShortcode(s string) bool {
	return strings.HasPrefix(s, models.FilePrefix)
}

// IsReserved reports whether code collides with an application route.
func IsReserved(code string) bool {
	return reservedWords[strings.ToLower(code)]
}

// SplitExtension splits "key.ext" into key and ext. A segment without a dot,
// or with nothing after the last dot, has no extension.
func SplitExtension(segment string) (key, ext string) {
	i := strings.LastIndexByte(segment, '.')
	if i <= 0 || i == len(segment)-1 {
		return segment, ""
	}
	return segment[:i], strings.ToLower(segment[i+1:])
}

var snippetContentTypes = map[string]string{
	"js":   "application/javascript",
	"ts":   "application/typescript",
	"py":   "text/x-python",
	"go":   "text/x-go",
	"json": "application/json",
	"html": "text/html",
	"css":  "text/css",
	"md":   "text/markdown",
	"sh":   "application/x-sh",
	"sql":  "application/sql",
	"txt":  "text/plain",
	"xml":  "application/xml",
	"yaml": "application/x-yaml",
	"yml":  "application/x-yaml",
	"c":    "text/x-c",
	"cpp":  "text/x-c++",
	"java": "text/x-java",
	"rs":   "text/x-rust",
	"rb":   "text/x-ruby",
}

// SnippetContentType returns the content type a snippet is served with.
func SnippetContentType(ext string) string {
	if ct, ok := snippetContentTypes[strings.ToLower(ext)]; ok {
		return ct + "; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// LegacyRedirectTarget appends date=YYYYMMDD (UTC) to the target of
// shortcodes carrying the legacy prefix. Other shortcodes are returned as is.
func LegacyRedirectTarget(prefix, shortcode, target string, now time.Time) string {
	if prefix == "" || !strings.HasPrefix(shortcode, prefix) {
		return target
	}

	fragment := ""
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target, fragment = target[:i], target[i:]
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + "date=" + now.UTC().Format("20060102") + fragment
}

const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	codeLength   = 6
)

// randomCode returns a random base62 code.
func randomCode() (string, error) {
	base := big.NewInt(int64(len(codeAlphabet)))
	b := make([]byte, codeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", err
		}
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b), nil
}
