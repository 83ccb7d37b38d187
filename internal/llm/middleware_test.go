package llm

import (
	"context"
	"testing"
)

type tagging struct {
	next Client
	tag  string
}

func (c *tagging) Name() string { return c.next.Name() }
func (c *tagging) Close() error { return c.next.Close() }
func (c *tagging) Complete(ctx context.Context, system, user string) (string, error) {
	out, err := c.next.Complete(ctx, system, user)
	return out + c.tag, err
}

func TestWrap_Order(t *testing.T) {
	inner := &FakeClient{Raw: "base"}
	a := func(next Client) Client { return &tagging{next: next, tag: "+a"} }
	b := func(next Client) Client { return &tagging{next: next, tag: "+b"} }

	// Wrap(inner, A, B) => A(B(inner)): B's tag applies first.
	cli := Wrap(inner, a, b)
	out, err := cli.Complete(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != "base+b+a" {
		t.Fatalf("got %q, want base+b+a", out)
	}
}

func TestLogging_PassesThrough(t *testing.T) {
	cli := Wrap(&FakeClient{Raw: `{"ok":true}`}, Logging())
	out, err := cli.Complete(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("got %q", out)
	}
	if cli.Name() != "FakeLLM" {
		t.Fatalf("name = %q", cli.Name())
	}
}
