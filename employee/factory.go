package employee

import (
	"log/slog"
	"strconv"

	"github.com/sghaida/hrpatterns/registry"
)

// Constructor builds a new Employee.
type Constructor func() Employee

// UnknownTagError is the panic value of MustCreate for an unrecognized tag.
type UnknownTagError struct{ Tag Tag }

// Error implements the error interface.
func (e UnknownTagError) Error() string {
	// Example: employee: unknown tag "CONTRACTOR"
	return "employee: unknown tag " + strconv.Quote(string(e.Tag))
}

// Factory creates employees by tag. It holds no per-call state.
type Factory struct {
	ctors  *registry.Map[Constructor]
	logger *slog.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFactory returns a Factory that knows FULLTIME, PARTTIME and INTERN.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		ctors: registry.New[Constructor]().
			Provide(string(TagFullTime), func() Employee { return FullTime{} }).
			Provide(string(TagPartTime), func() Employee { return PartTime{} }).
			Provide(string(TagIntern), func() Employee { return Intern{} }),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the employee variant for tag, or nil if the tag is unknown.
// Variants are stateless values: repeated calls with the same tag return
// equal values.
//
// A nil result is not an error; callers must check it before calling Role.
func (f *Factory) Create(tag Tag) Employee {
	ctor, ok := f.ctors.Get(string(tag))
	if !ok {
		f.logger.Debug("employee: unknown tag", slog.String("tag", string(tag)))
		return nil
	}
	return ctor()
}

// MustCreate is Create that panics with UnknownTagError on an unknown tag.
func (f *Factory) MustCreate(tag Tag) Employee {
	e := f.Create(tag)
	if e == nil {
		panic(UnknownTagError{Tag: tag})
	}
	return e
}

// Tags returns the recognized tags in ascending order.
func (f *Factory) Tags() []Tag {
	keys := f.ctors.Keys()
	tags := make([]Tag, len(keys))
	for i, k := range keys {
		tags[i] = Tag(k)
	}
	return tags
}
