package errors

import "fmt"

// Builder accumulates context on an error. A nil *Builder stays nil through every
// call, so chains starting from a nil parent produce a nil error.
type Builder struct {
	error
}

// With starts a builder from parent, optionally wrapping it with a formatted message.
func With(parent error, args ...any) *Builder {
	if parent == nil {
		return nil
	} else if len(args) == 0 {
		return &Builder{error: parent}
	}

	msg, isStr := args[0].(string)
	if !isStr {
		panic(fmt.Sprintf("invariant violation: got %T, expected string", args[0]))
	}
	if len(args) > 1 {
		msg = fmt.Sprintf(msg, args[1:]...)
	}
	return &Builder{error: Wrap(parent, msg)}
}

func (b *Builder) Err() error {
	if b == nil {
		return nil
	}
	return b.error
}

func (b *Builder) Wrapf(msg string, args ...any) *Builder {
	if b == nil {
		return nil
	}
	b.error = Wrapf(b.error, msg, args...)
	return b
}

func (b *Builder) Cause(cause error) *Builder {
	if b == nil {
		return nil
	}
	b.error = WithCause(b.error, cause)
	return b
}

func (b *Builder) Fields(fields ...any) *Builder {
	if b == nil {
		return nil
	}
	b.error = WithFields(b.error, fields...)
	return b
}

func (b *Builder) Stack() *Builder {
	if b == nil {
		return nil
	}
	b.error = WithStack(b.error)
	return b
}

// Set applies Fault and Fields values.
func (b *Builder) Set(things ...any) *Builder {
	for _, thing := range things {
		switch v := thing.(type) {
		case Fault:
			if b != nil {
				b.error = WithFault(b.error, v)
			}
		case Fields:
			b = b.Fields(v...)
		default:
			panic(fmt.Sprintf("invariant violation: got %T, expected Fault or Fields", thing))
		}
	}
	return b
}
