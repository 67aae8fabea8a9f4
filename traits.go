package generators

import (
	"errors"
	"fmt"
	"reflect"
)

// Adaptable is implemented by types that know how to convert themselves to a generator.
type Adaptable[T any] interface {
	AsGenerator() Generator[T]
}

// Capability describes how a type can take part in the generator and consumer protocols.
type Capability uint8

const (
	// CapabilityNative is set for types implementing Generator.
	CapabilityNative Capability = 1 << iota

	// CapabilityAdaptable is set for types that are not generators but can be adapted to one:
	// Adaptable implementations, producers, functions of no arguments, and cursors.
	CapabilityAdaptable

	// CapabilityConsumer is set for types implementing Consumer, or functions of one argument returning bool.
	CapabilityConsumer
)

var (
	// ErrNotGeneratable is the error returned by As for values that cannot be adapted to a generator.
	ErrNotGeneratable = errors.New("value cannot generate")

	// ErrAmbiguous is the error returned by As for values that can be adapted to a generator in more than one way.
	ErrAmbiguous = errors.New("ambiguous generator adaptation")

	// ErrNotConsumable is the error returned by AsConsumer for values that cannot be adapted to a consumer.
	ErrNotConsumable = errors.New("value cannot consume")
)

// CanGenerate returns true if c has CapabilityNative or CapabilityAdaptable set.
func (c Capability) CanGenerate() bool {
	return c&(CapabilityNative|CapabilityAdaptable) != 0
}

// Classify returns the capabilities of type X for elements of type T.
// It only inspects the type, X does not need to have a value.
func Classify[X any, T any]() Capability {
	x := reflect.TypeFor[X]()

	c := Capability(0)

	isProducer := x.Implements(reflect.TypeFor[Producer[T]]()) || funcConvertible[func() T](x)
	isCursor := x.Implements(reflect.TypeFor[Cursor[T]]())

	switch {
	case x.Implements(reflect.TypeFor[Generator[T]]()):
		c |= CapabilityNative

	case x.Implements(reflect.TypeFor[Adaptable[T]]()), isProducer != isCursor:
		c |= CapabilityAdaptable
	}

	if x.Implements(reflect.TypeFor[Consumer[T]]()) || funcConvertible[func(T) bool](x) {
		c |= CapabilityConsumer
	}

	return c
}

// IsGenerator returns true if x implements Generator[T].
func IsGenerator[T any](x any) bool {
	_, ok := x.(Generator[T])
	return ok
}

// IsGeneratorAdaptable returns true if x does not implement Generator[T], but As can adapt it to one.
func IsGeneratorAdaptable[T any](x any) bool {
	if IsGenerator[T](x) {
		return false
	}

	if _, ok := x.(Adaptable[T]); ok {
		return true
	}

	_, isProducer := producerOf[T](x)
	_, isCursor := x.(Cursor[T])

	return isProducer != isCursor
}

// CanGenerate returns true if As can return a generator for x.
func CanGenerate[T any](x any) bool {
	return IsGenerator[T](x) || IsGeneratorAdaptable[T](x)
}

// IsConsumer returns true if x implements Consumer[T], or is a function accepting T and returning bool.
// Named function types with that signature are consumers, too.
func IsConsumer[T any](x any) bool {
	if _, ok := x.(Consumer[T]); ok {
		return true
	}

	_, ok := convertFunc[func(T) bool](x)

	return ok
}

// As returns x as a generator.
//
// If x already implements Generator[T], it is returned unchanged. Otherwise x is adapted,
// in order of preference: Adaptable values are converted using AsGenerator, producers and
// functions of no arguments using FromProducer, and cursors using FromCursor.
// A value that is both a producer and a cursor is rejected with ErrAmbiguous.
// A value that cannot be adapted is rejected with ErrNotGeneratable.
func As[T any](x any) (Generator[T], error) {
	switch v := x.(type) {
	case Generator[T]:
		return v, nil

	case Adaptable[T]:
		return v.AsGenerator(), nil
	}

	p, isProducer := producerOf[T](x)
	c, isCursor := x.(Cursor[T])

	switch {
	case isProducer && isCursor:
		return nil, fmt.Errorf("%w: %T is both a producer and a cursor", ErrAmbiguous, x)

	case isProducer:
		return FromProducer(p), nil

	case isCursor:
		return FromCursor[T](c), nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrNotGeneratable, x)
	}
}

// MustAs is like As, but panics if x cannot be adapted.
func MustAs[T any](x any) Generator[T] {
	g, err := As[T](x)
	if err != nil {
		panic(err)
	}

	return g
}

// AsConsumer returns x as a consumer.
//
// If x already implements Consumer[T], it is returned unchanged. Functions accepting T and
// returning bool are adapted using ConsumerFunc, and output cursors using ToCursor.
// A value that cannot be adapted is rejected with ErrNotConsumable.
func AsConsumer[T any](x any) (Consumer[T], error) {
	if c, ok := x.(Consumer[T]); ok {
		return c, nil
	}

	if f, ok := convertFunc[func(T) bool](x); ok {
		return ConsumerFunc[T](f), nil
	}

	if i, ok := x.(OutputCursor[T]); ok {
		return ToCursor[T](i), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrNotConsumable, x)
}

// ValueType returns the element type of the generator that type X is or can be adapted to.
// It returns nil if X cannot generate, or if X is both a producer and a cursor.
func ValueType[X any]() reflect.Type {
	x := reflect.TypeFor[X]()

	if isGeneratorType(x) {
		return methodResult(x, "Value")
	}

	if g := methodResult(x, "AsGenerator"); g != nil && isGeneratorType(g) {
		return methodResult(g, "Value")
	}

	produced := producedType(x)
	cursor := cursorType(x)

	if produced != nil && cursor != nil {
		return nil
	}

	if produced != nil {
		return produced
	}

	return cursor
}

// producerOf returns x as a producer, if it is one, or a function of no arguments returning T.
func producerOf[T any](x any) (Producer[T], bool) {
	if p, ok := x.(Producer[T]); ok {
		return p, true
	}

	if f, ok := convertFunc[func() T](x); ok {
		return ProducerFunc[T](f), true
	}

	return nil, false
}

// convertFunc converts x to the function type F, if x is a function with the same signature.
func convertFunc[F any](x any) (F, bool) {
	var zero F

	v := reflect.ValueOf(x)
	if !v.IsValid() || !funcConvertible[F](v.Type()) {
		return zero, false
	}

	return v.Convert(reflect.TypeFor[F]()).Interface().(F), true
}

// funcConvertible returns true if t is a function type with the same signature as F.
func funcConvertible[F any](t reflect.Type) bool {
	return t.Kind() == reflect.Func && t.ConvertibleTo(reflect.TypeFor[F]())
}

func isGeneratorType(t reflect.Type) bool {
	return methodResult(t, "Category") == reflect.TypeFor[Category]() &&
		methodResult(t, "Live") == reflect.TypeFor[bool]() &&
		methodResult(t, "Value") != nil &&
		isProcedure(t, "Advance")
}

// producedType returns the element type produced by t, if t is a producer or a function of no arguments.
func producedType(t reflect.Type) reflect.Type {
	if p := methodResult(t, "Produce"); p != nil {
		return p
	}

	if t.Kind() == reflect.Func && t.NumIn() == 0 && t.NumOut() == 1 {
		return t.Out(0)
	}

	return nil
}

// cursorType returns the element type of t, if t is a cursor.
func cursorType(t reflect.Type) reflect.Type {
	if !isProcedure(t, "Advance") {
		return nil
	}

	return methodResult(t, "Get")
}

// methodResult returns the result type of method name of t, if the method takes no arguments
// and returns a single result.
func methodResult(t reflect.Type, name string) reflect.Type {
	m, ok := t.MethodByName(name)
	if !ok {
		return nil
	}

	if m.Type.NumIn() != receivers(t) || m.Type.NumOut() != 1 {
		return nil
	}

	return m.Type.Out(0)
}

// isProcedure returns true if t has a method name that takes no arguments and returns nothing.
func isProcedure(t reflect.Type, name string) bool {
	m, ok := t.MethodByName(name)

	return ok && m.Type.NumIn() == receivers(t) && m.Type.NumOut() == 0
}

// receivers returns the number of receiver arguments in the method types of t.
func receivers(t reflect.Type) int {
	if t.Kind() == reflect.Interface {
		return 0
	}

	return 1
}
