// Package cerr provides the error taxonomy shared across the compilation
// pipeline: a closed-ish set of error kinds, a retry status, and a rich
// error value that carries both plus an operation chain.
package cerr

// Kind categorizes an error for structured handling. It mirrors the
// taxonomy in spec section 7.
type Kind int

const (
	Unexpected Kind = iota
	Unsupported
	ConfigInvalid
	NotImplemented

	ParseFailed
	SyntaxError
	EncodingError

	ResolutionFailed
	SymbolNotFound
	AmbiguousSymbol
	CircularDependency
	ImportFailed

	TypeMismatch
	UnknownType

	BlockNotFound
	InvalidBlockRef
	GraphBuildFailed
	CycleDetected

	FileNotFound
	PermissionDenied
	IoFailed
	TraversalFailed

	UnsupportedLanguage
	LanguageDetectionFailed
	GrammarError

	SerializationFailed
	DeserializationFailed
	InvalidFormat

	MemoryLimitExceeded
	Timeout
	ResourceExhausted

	InvalidArgument
	AssertionFailed
	InvariantViolation
)

var kindNames = map[Kind]string{
	Unexpected:              "Unexpected",
	Unsupported:              "Unsupported",
	ConfigInvalid:            "ConfigInvalid",
	NotImplemented:           "NotImplemented",
	ParseFailed:              "ParseFailed",
	SyntaxError:              "SyntaxError",
	EncodingError:            "EncodingError",
	ResolutionFailed:         "ResolutionFailed",
	SymbolNotFound:           "SymbolNotFound",
	AmbiguousSymbol:          "AmbiguousSymbol",
	CircularDependency:       "CircularDependency",
	ImportFailed:             "ImportFailed",
	TypeMismatch:             "TypeMismatch",
	UnknownType:              "UnknownType",
	BlockNotFound:            "BlockNotFound",
	InvalidBlockRef:          "InvalidBlockRef",
	GraphBuildFailed:         "GraphBuildFailed",
	CycleDetected:            "CycleDetected",
	FileNotFound:             "FileNotFound",
	PermissionDenied:         "PermissionDenied",
	IoFailed:                 "IoFailed",
	TraversalFailed:          "TraversalFailed",
	UnsupportedLanguage:      "UnsupportedLanguage",
	LanguageDetectionFailed:  "LanguageDetectionFailed",
	GrammarError:             "GrammarError",
	SerializationFailed:      "SerializationFailed",
	DeserializationFailed:    "DeserializationFailed",
	InvalidFormat:            "InvalidFormat",
	MemoryLimitExceeded:      "MemoryLimitExceeded",
	Timeout:                  "Timeout",
	ResourceExhausted:        "ResourceExhausted",
	InvalidArgument:          "InvalidArgument",
	AssertionFailed:          "AssertionFailed",
	InvariantViolation:       "InvariantViolation",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unexpected"
}

// Retryable reports whether errors of this kind are worth retrying by
// default. Parse and resolution failures are permanent; IO hiccups and
// resource pressure are not.
func (k Kind) Retryable() bool {
	switch k {
	case Timeout, ResourceExhausted, IoFailed:
		return true
	default:
		return false
	}
}
