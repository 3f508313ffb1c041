package greeter

import (
	"errors"
	"fmt"
	"io"
)

// Validation failures are immediate, local and non-retryable: the caller
// must correct the input and call again.
var (
	// ErrEmptyGreeting is returned when a Greeter is constructed with an empty phrase.
	ErrEmptyGreeting = errors.New("greeting cannot be empty")
	// ErrEmptyName is returned when the greet target is an empty string.
	ErrEmptyName = errors.New("name cannot be empty")
)

// WriteError wraps the sink's native error when GreetTo fails to write.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write greeting: %v", e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// Greeter holds a validated greeting phrase. It is immutable after
// construction, so a single value may be shared across goroutines.
type Greeter struct {
	greeting string
}

// New returns a Greeter for the given phrase.
func New(greeting string) (Greeter, error) {
	if greeting == "" {
		return Greeter{}, ErrEmptyGreeting
	}
	return Greeter{greeting: greeting}, nil
}

// Default returns a Greeter preconfigured with the phrase "Hello".
func Default() Greeter {
	return Greeter{greeting: "Hello"}
}

// Greeting returns the configured phrase.
func (g Greeter) Greeting() string { return g.greeting }

// Greet formats the message for name as "<greeting>, <name>!".
func (g Greeter) Greet(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	return fmt.Sprintf("%s, %s!", g.greeting, name), nil
}

// GreetTo composes Greet and writes the line, plus a trailing newline, to w.
// Validation errors propagate unchanged; write failures return a *WriteError.
func (g Greeter) GreetTo(w io.Writer, name string) error {
	msg, err := g.Greet(name)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, msg); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
