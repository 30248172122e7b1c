// Package normalize turns raw RPC error messages into catalog lookup keys.
//
// Servers embed numeric parameters directly in error messages
// (FLOOD_WAIT_5, PHONE_MIGRATE_2). The catalog is keyed by the message with
// every digit run replaced by a placeholder, so all parameter values of one
// error family share a single key.
package normalize

import (
	"regexp"
	"strconv"
)

// Placeholder replaces every digit run in a template.
const Placeholder = "X"

var digitRun = regexp.MustCompile(`[0-9]+`)

// Template returns message with every maximal run of ASCII digits replaced
// by Placeholder. Template is idempotent.
func Template(message string) string {
	return digitRun.ReplaceAllLiteralString(message, Placeholder)
}

// Result is a fully normalized message.
type Result struct {
	Template string
	// Raw is the parameter digits as they appear in the message, or "".
	Raw   string
	Param int64
	// OK is false when there is no parameter or it does not fit in an int64.
	OK bool
}

// Parse normalizes message in one pass over its digit runs.
func Parse(message string) Result {
	r := Result{
		Template: Template(message),
		Raw:      ParamText(message),
	}
	if r.Raw == "" {
		return r
	}
	if v, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
		r.Param, r.OK = v, true
	}
	return r
}

// Normalize returns the lookup template for message along with the extracted
// parameter. The parameter is the first digit run that directly follows an
// underscore, or the first digit run when none does. ok is false when the
// message carries no digits or the run does not fit in an int64.
func Normalize(message string) (template string, param int64, ok bool) {
	r := Parse(message)
	return r.Template, r.Param, r.OK
}

// ParamText returns the digits Normalize would parse, or "" when message
// carries no digit run.
func ParamText(message string) string {
	locs := digitRun.FindAllStringIndex(message, -1)
	if len(locs) == 0 {
		return ""
	}
	for _, loc := range locs {
		if loc[0] > 0 && message[loc[0]-1] == '_' {
			return message[loc[0]:loc[1]]
		}
	}
	return message[locs[0][0]:locs[0][1]]
}
