package command

import (
	"regexp"
	"strings"
)

var (
	requiredRe = regexp.MustCompile(`<([^<>]+)>`)
	optionalRe = regexp.MustCompile(`\[([^\[\]]+)\]`)
)

// ParseSignature splits a declaration like "tag <name> [value]" into the head
// token and the ordered required/optional parameter names. The head itself is
// excluded from extraction.
func ParseSignature(decl string) (head string, required, optional []string) {
	head = decl
	rest := ""
	if i := strings.IndexByte(decl, ' '); i >= 0 {
		head, rest = decl[:i], decl[i+1:]
	}

	for _, m := range requiredRe.FindAllStringSubmatch(rest, -1) {
		required = append(required, m[1])
	}
	for _, m := range optionalRe.FindAllStringSubmatch(rest, -1) {
		optional = append(optional, m[1])
	}
	return head, required, optional
}
