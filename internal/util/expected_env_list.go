package util

import (
	"fmt"
	"reflect"
	"strings"
)

// ----------------------------------------------------- FormatExpectedEnvList -------------------------------------- //

// FormatExpectedEnvList formats the list of environment variables read into T.
// It uses reflection to read the `env` and `envDefault` tags of the struct fields,
// descending into nested structs. Required variables are listed first.
func FormatExpectedEnvList[T any]() string {
	var required, optional []envEntry

	collectEnvEntries(reflect.TypeOf((*T)(nil)).Elem(), &required, &optional)

	maxLen := 0
	for _, e := range append(append([]envEntry{}, required...), optional...) {
		maxLen = max(maxLen, len(e.name))
	}

	var b strings.Builder
	for _, e := range required {
		_, _ = fmt.Fprintf(&b, "- %s %s[Required]\n", e.name, fmtSpaces(e.name, maxLen))
	}

	for _, e := range optional {
		if e.def == "" {
			_, _ = fmt.Fprintf(&b, "- %s %s[Optional]\n", e.name, fmtSpaces(e.name, maxLen))
			continue
		}

		_, _ = fmt.Fprintf(&b, "- %s %s[Optional] (default: %s)\n", e.name, fmtSpaces(e.name, maxLen), e.def)
	}

	return b.String()
}

type envEntry struct {
	name string
	def  string
}

func collectEnvEntries(rt reflect.Type, required, optional *[]envEntry) {
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)

		val, ok := field.Tag.Lookup("env")
		if !ok {
			if field.Type.Kind() == reflect.Struct {
				collectEnvEntries(field.Type, required, optional)
			}

			continue
		}

		name, opts, _ := strings.Cut(val, ",")
		if name == "" {
			continue
		}

		entry := envEntry{name: name, def: field.Tag.Get("envDefault")}
		if strings.Contains(opts, "required") {
			*required = append(*required, entry)
		} else {
			*optional = append(*optional, entry)
		}
	}
}

func fmtSpaces(s string, maxLen int) string {
	return strings.Repeat(" ", maxLen-len(s))
}
