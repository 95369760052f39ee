// Package session keeps per-browser state: the signed-in user and a
// one-shot flash message.
package session

import (
	"context"
	"encoding/gob"

	"blogapp/pkg/user"
)

const (
	userKey  = "user"
	flashKey = "message"
)

func init() {
	gob.Register(user.User{})
}

// Locals is the snapshot of session state a request is handled with.
// Message has already been consumed from the store when Locals is built.
type Locals struct {
	User    *user.User
	Message string
}

type localsKey struct{}

func WithLocals(ctx context.Context, l *Locals) context.Context {
	return context.WithValue(ctx, localsKey{}, l)
}

// LocalsFrom never returns nil.
func LocalsFrom(ctx context.Context) *Locals {
	if l, ok := ctx.Value(localsKey{}).(*Locals); ok && l != nil {
		return l
	}
	return &Locals{}
}
