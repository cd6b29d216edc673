package alert

import "github.com/oshokin/smart-home/internal/event"

// Route describes one link of a chain.
type Route struct {
	// Category is matched against incoming alerts.
	Category string
	// Label prefixes the reported message.
	Label string
}

// Chain is the head of a fixed sequence of links.
type Chain struct {
	// head is the first link, nil for an empty chain.
	head Handler
	// categories lists link categories head first.
	categories []string
}

// NewChain wires routes tail first and returns the chain starting at routes[0].
func NewChain(r event.Reporter, routes ...Route) *Chain {
	c := &Chain{categories: make([]string, 0, len(routes))}

	var next Handler
	for i := len(routes) - 1; i >= 0; i-- {
		next = NewHandler(routes[i].Category, routes[i].Label, r, next)
	}

	for _, route := range routes {
		c.categories = append(c.categories, route.Category)
	}

	c.head = next

	return c
}

// Handle dispatches a from the head. An empty chain drops everything.
func (c *Chain) Handle(a Alert) bool {
	if c == nil || c.head == nil {
		return false
	}

	return c.head.Handle(a)
}

// Dispatch is a shorthand for Handle(Alert{category, message}).
func (c *Chain) Dispatch(category, message string) bool {
	return c.Handle(Alert{Category: category, Message: message})
}

// Categories returns the link categories in dispatch order.
func (c *Chain) Categories() []string {
	if c == nil {
		return nil
	}

	return append([]string(nil), c.categories...)
}
