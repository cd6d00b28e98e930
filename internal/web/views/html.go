// Package views renders the wireframe screens as templ components.
package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so markup can be emitted without
// checking every call.
type writer struct {
	w   io.Writer
	err error
}

func (b *writer) raw(parts ...string) {
	for _, p := range parts {
		if b.err != nil {
			return
		}
		_, b.err = io.WriteString(b.w, p)
	}
}

func (b *writer) text(s string) {
	b.raw(templ.EscapeString(s))
}

func (b *writer) render(ctx context.Context, c templ.Component) {
	if b.err != nil || c == nil {
		return
	}
	b.err = c.Render(ctx, b.w)
}

func component(fn func(ctx context.Context, b *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &writer{w: w}
		fn(ctx, b)
		return b.err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// pathID escapes id for use as one segment of a URL path inside an attribute.
func pathID(id string) string {
	return esc(url.PathEscape(id))
}

// hxVals encodes key/value pairs for an hx-vals attribute.
func hxVals(kv ...string) string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	data, _ := json.Marshal(m)
	return esc(string(data))
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func current(active bool) string {
	if active {
		return "page"
	}
	return "false"
}

// Join renders components in order.
func Join(components ...templ.Component) templ.Component {
	return component(func(ctx context.Context, b *writer) {
		for _, c := range components {
			b.render(ctx, c)
		}
	})
}
