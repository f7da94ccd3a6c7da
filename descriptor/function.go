package descriptor

// Qualifiers captures language-specific function modifiers in a uniform
// shape (async/const/unsafe/static/generator), mirroring
// crates/llmcc-descriptor/src/function.rs's FunctionQualifiers.
type Qualifiers struct {
	IsAsync     bool
	IsConst     bool
	IsUnsafe    bool
	IsStatic    bool
	IsGenerator bool
}

// ParameterKind broadly classifies a parameter across languages.
type ParameterKind int

const (
	Positional ParameterKind = iota
	Receiver
	VariadicPositional
	VariadicKeyword
	KeywordOnly
	Destructured
	UnknownParam
)

// Parameter is a normalized parameter descriptor supporting both typed and
// typeless languages.
type Parameter struct {
	Name         string
	Pattern      string
	Kind         ParameterKind
	TypeHint     *TypeExpr
	DefaultValue string
}

// Function is a normalized descriptor for a function-like declaration,
// consumed by Collector while walking a HIR function/method subtree.
type Function struct {
	Name          string
	FQN           string
	Visibility    VisibilityOf
	Qualifiers    Qualifiers
	Generics      string
	WhereClause   string
	Parameters    []Parameter
	ReturnType    *TypeExpr
	Signature     string
	Decorators    []string
	Docstring     string
	Language      LanguageKey
}
