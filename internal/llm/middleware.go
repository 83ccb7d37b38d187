package llm

import (
	"context"
	"log"
	"time"
)

// Middleware decorates a Client to inject cross-cutting concerns.
// Completion failures are terminal for a trace, so there is no retry
// middleware here.
type Middleware func(Client) Client

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner Client, mws ...Middleware) Client {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// Logging logs request size, duration and outcome of each completion.
func Logging() Middleware {
	return func(next Client) Client {
		return &logged{next: next}
	}
}

type logged struct {
	next Client
}

func (c *logged) Name() string { return c.next.Name() }
func (c *logged) Close() error { return c.next.Close() }

func (c *logged) Complete(ctx context.Context, system, user string) (string, error) {
	start := time.Now()
	log.Printf("LLM request (%s): %d bytes", c.next.Name(), len(system)+len(user))
	out, err := c.next.Complete(ctx, system, user)
	if err != nil {
		log.Printf("LLM error (%s) after %s: %v", c.next.Name(), time.Since(start).Round(time.Millisecond), err)
		return "", err
	}
	log.Printf("LLM response (%s): %d bytes in %s", c.next.Name(), len(out), time.Since(start).Round(time.Millisecond))
	return out, nil
}
