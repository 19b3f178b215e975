package schema

import "fmt"

// Kind partitions validation failures. Exactly one Error is returned per
// validation call: checks run in a fixed order and the first failure wins.
type Kind int

const (
	KindStructural   Kind = iota // wrong shape: not an object/list where expected
	KindMissingField             // required key absent after alias resolution
	KindTypeMismatch             // field present but wrong primitive type
	KindRange                    // value outside allowed bounds or format
	KindEnum                     // value outside a closed set
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindMissingField:
		return "missing_field"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindRange:
		return "range"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func structuralf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindStructural, Message: fmt.Sprintf(format, args...)}
}

func missingf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindMissingField, Message: fmt.Sprintf(format, args...)}
}

func mismatchf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindTypeMismatch, Message: fmt.Sprintf(format, args...)}
}

func rangef(format string, args ...interface{}) *Error {
	return &Error{Kind: KindRange, Message: fmt.Sprintf(format, args...)}
}

func enumf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindEnum, Message: fmt.Sprintf(format, args...)}
}
