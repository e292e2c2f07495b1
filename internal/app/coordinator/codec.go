package coordinator

import (
	"encoding/json"
	"strings"

	"github.com/pbf-league/huddle/internal/domains/entities"
)

// datatag marks the start of machine-readable context embedded in
// outbound text. The empty link renders invisibly on the platform.
const datatag = " [](#datatag"

// Context is the structured payload embedded alongside human-readable
// text so an inbound reply can be interpreted without guessing.
type Context struct {
	Action entities.ActionKind `json:"action"`
	Play   string              `json:"play,omitempty"`
	Number int                 `json:"number,omitempty"`
	Note   string              `json:"note,omitempty"`
}

// platform markup characters that must not appear raw inside the tag
var markupEscapes = []struct {
	value  string
	result string
}{
	{"[", "%5B"},
	{"]", "%5D"},
	{"(", "%28"},
	{")", "%29"},
	{" ", "%20"},
}

func escapeMarkup(value string) string {
	for _, replacement := range markupEscapes {
		value = strings.ReplaceAll(value, replacement.value, replacement.result)
	}
	return value
}

func unescapeMarkup(value string) string {
	for i := len(markupEscapes) - 1; i >= 0; i-- {
		value = strings.ReplaceAll(value, markupEscapes[i].result, markupEscapes[i].value)
	}
	return value
}

// Embed appends an encoded context after the human-readable text. A nil
// context leaves the text untouched.
func Embed(text string, ctx *Context) string {
	if ctx == nil {
		return text
	}
	data, err := json.Marshal(ctx)
	if err != nil {
		// Context only holds strings, ints and the action enum, all of
		// which marshal.
		panic(err)
	}
	return text + datatag + escapeMarkup(string(data)) + ")"
}

// Extract pulls an embedded context back out of rendered text. Any
// decode failure yields (Context{}, false); callers fall back to
// plain-text interpretation.
func Extract(text string) (Context, bool) {
	idx := strings.Index(text, datatag)
	if idx == -1 {
		return Context{}, false
	}
	data := text[idx+len(datatag):]
	end := strings.Index(data, ")")
	if end == -1 {
		return Context{}, false
	}
	data = unescapeMarkup(data[:end])

	var ctx Context
	if err := json.Unmarshal([]byte(data), &ctx); err != nil {
		return Context{}, false
	}
	return ctx, true
}
