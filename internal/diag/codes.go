package diag

// Code is a stable, namespaced violation identifier of the form
// SST-<ABBR>-<NNN>. Codes are a published contract: once shipped they are
// never reassigned or reused, and each code maps to exactly one category
// and one catalog entry. New rules mint new codes.
type Code string

const (
	// CodeFileNotFound is the synthetic violation for an unreadable file.
	CodeFileNotFound Code = "SST-GEN-001"

	// CodeStageOutsideApp flags `.stage` access on the injected config
	// object outside the app() entry function.
	CodeStageOutsideApp Code = "SST-STG-001"
	// CodeRunWithParams flags a run() entry function declared with
	// parameters; that entry point must be nullary.
	CodeRunWithParams Code = "SST-STG-002"
	// CodeHardcodedStage flags a variable named stage initialized to a
	// stage-name literal.
	CodeHardcodedStage Code = "SST-STG-003"

	// CodeUselessInterpolate flags $interpolate wrapping a single bare
	// substitution.
	CodeUselessInterpolate Code = "SST-OUT-001"
	// CodeOutputConcat flags string concatenation with an async output
	// value.
	CodeOutputConcat Code = "SST-OUT-002"

	// CodeCircularDependency flags two resources linking each other.
	CodeCircularDependency Code = "SST-DEP-001"
	// CodeUseBeforeDeclare flags a link referencing a resource declared
	// later in the file.
	CodeUseBeforeDeclare Code = "SST-DEP-002"

	// CodeUnindexedField flags Dynamo table fields not used by any index.
	CodeUnindexedField Code = "SST-DYN-001"

	// CodeCorsLegacyName flags v2-style allowed* CORS property names.
	CodeCorsLegacyName Code = "SST-COR-001"

	// CodeReservedEnvVar flags Lambda runtime-reserved environment
	// variable names set in an environment block.
	CodeReservedEnvVar Code = "SST-ENV-001"

	// CodeDomainMalformed flags domain values carrying a URL scheme or a
	// trailing dot.
	CodeDomainMalformed Code = "SST-DOM-001"
	// CodeDomainWrongProperty flags `domainName` used instead of `domain`.
	CodeDomainWrongProperty Code = "SST-DOM-002"
)

// Category groups violations for display; it is uniquely determined by the
// code prefix.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryStage       Category = "stage-variable"
	CategoryAsyncOutput Category = "async-output"
	CategoryDependency  Category = "resource-dependency"
	CategoryIndexing    Category = "dynamo-indexing"
	CategoryCors        Category = "cors-naming"
	CategoryReservedEnv Category = "reserved-env"
	CategoryDomain      Category = "domain-config"
)

var codeCategories = map[Code]Category{
	CodeFileNotFound:        CategoryGeneral,
	CodeStageOutsideApp:     CategoryStage,
	CodeRunWithParams:       CategoryStage,
	CodeHardcodedStage:      CategoryStage,
	CodeUselessInterpolate:  CategoryAsyncOutput,
	CodeOutputConcat:        CategoryAsyncOutput,
	CodeCircularDependency:  CategoryDependency,
	CodeUseBeforeDeclare:    CategoryDependency,
	CodeUnindexedField:      CategoryIndexing,
	CodeCorsLegacyName:      CategoryCors,
	CodeReservedEnvVar:      CategoryReservedEnv,
	CodeDomainMalformed:     CategoryDomain,
	CodeDomainWrongProperty: CategoryDomain,
}

// CategoryOf returns the category a code belongs to.
func CategoryOf(code Code) Category {
	if cat, ok := codeCategories[code]; ok {
		return cat
	}
	return CategoryGeneral
}

// Codes returns every shipped code. The slice is fresh on each call.
func Codes() []Code {
	out := make([]Code, 0, len(codeCategories))
	for code := range codeCategories {
		out = append(out, code)
	}
	return out
}
