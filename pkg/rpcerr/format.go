package rpcerr

import (
	"errors"
	"fmt"
	"strings"
)

// UserString returns the human part of err without code or call context.
// Non classified errors fall back to err.Error().
func UserString(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Text()
	}
	return err.Error()
}

// DebugString returns a verbose, one line per chain element description.
func DebugString(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	for i, item := range flattenChain(err) {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d: %T: %s", i+1, item, item.Error())
		typed, ok := item.(*Error)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " | kind=%s | code=%d", typed.Kind, typed.Code)
		if typed.Param != nil {
			fmt.Fprintf(&b, " | param=%d", *typed.Param)
		}
		if typed.RPC != "" {
			fmt.Fprintf(&b, " | rpc=%q", typed.RPC)
		}
		if typed.Unknown {
			b.WriteString(" | unknown=true")
		}
	}
	return b.String()
}

func flattenChain(err error) []error {
	var out []error
	queue := []error{err}
	const maxEntries = 64
	for len(queue) > 0 && len(out) < maxEntries {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}
		out = append(out, current)
		switch u := current.(type) {
		case interface{ Unwrap() []error }:
			queue = append(queue, u.Unwrap()...)
		default:
			if next := errors.Unwrap(current); next != nil {
				queue = append(queue, next)
			}
		}
	}
	return out
}
