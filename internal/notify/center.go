package notify

import (
	"sort"
	"sync/atomic"

	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

// Token identifies one observer registration.
type Token uint64

type observer struct {
	name string
	fn   func()
}

// Center fans named notifications out to registered observers. Observers run
// synchronously on the posting goroutine in registration order.
type Center struct {
	observers *csmap.CsMap[Token, observer]
	next      atomic.Uint64
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{
		observers: csmap.Create[Token, observer](),
	}
}

// Subscribe registers fn for notifications named name.
func (c *Center) Subscribe(name string, fn func()) Token {
	token := Token(c.next.Add(1))
	c.observers.Store(token, observer{name: name, fn: fn})
	return token
}

// Unsubscribe removes a registration. Unknown tokens are ignored.
func (c *Center) Unsubscribe(token Token) {
	c.observers.Delete(token)
}

// Post delivers a notification to every observer registered for name.
func (c *Center) Post(name string) {
	var tokens []Token
	c.observers.Range(func(token Token, o observer) bool {
		if o.name == name {
			tokens = append(tokens, token)
		}
		return false
	})
	sort.Slice(tokens, func(i, j int) bool { return tokens[i] < tokens[j] })

	for _, token := range tokens {
		// An earlier observer may have unsubscribed this one.
		o, ok := c.observers.Load(token)
		if !ok {
			continue
		}
		o.fn()
	}
}

// Count reports the number of active registrations.
func (c *Center) Count() int {
	return c.observers.Count()
}
