// Package catalog is the static reference table mapping violation codes to
// human descriptions and examples. It is read-only data loaded once at
// process start; detection never mutates it.
package catalog

import (
	"sort"

	"github.com/duersjefen/deploy-kit/internal/diag"
)

// Entry documents one violation code.
type Entry struct {
	Code        diag.Code
	Title       string
	Description string
	Example     string
	DocsURL     string
}

var entries = map[diag.Code]Entry{
	diag.CodeFileNotFound: {
		Code:        diag.CodeFileNotFound,
		Title:       "config file not found",
		Description: "The config source file could not be read. Detection reports this as a finding instead of failing, so callers always receive a well-formed result.",
		Example:     "deploykit check ./missing/sst.config.ts",
	},
	diag.CodeStageOutsideApp: {
		Code:        diag.CodeStageOutsideApp,
		Title:       "stage read from config input outside app()",
		Description: "The injected config object only carries a stage inside the app() entry function. Anywhere else the accessor silently resolves to undefined and stage-dependent settings fall back to their defaults. Use the $app.stage global instead.",
		Example:     "async run() {\n  const stage = input?.stage || \"dev\"; // always \"dev\"\n}",
		DocsURL:     "https://sst.dev/docs/reference/global/#app-stage",
	},
	diag.CodeRunWithParams: {
		Code:        diag.CodeRunWithParams,
		Title:       "run() declared with parameters",
		Description: "The run() entry function is invoked with no arguments. Declared parameters stay undefined at deploy time and anything derived from them misconfigures silently.",
		Example:     "async run(input) { /* input is always undefined */ }",
	},
	diag.CodeHardcodedStage: {
		Code:        diag.CodeHardcodedStage,
		Title:       "hardcoded stage name",
		Description: "A variable named stage initialized to a fixed stage literal pins every deployment to one stage. Read $app.stage so the deployed stage follows the CLI.",
		Example:     "const stage = \"production\";",
		DocsURL:     "https://sst.dev/docs/reference/global/#app-stage",
	},
	diag.CodeUselessInterpolate: {
		Code:        diag.CodeUselessInterpolate,
		Title:       "unnecessary $interpolate wrapper",
		Description: "$interpolate around a single bare substitution adds nothing; the inner expression already is the output value.",
		Example:     "$interpolate`${bucket.arn}` // same as bucket.arn",
		DocsURL:     "https://sst.dev/docs/reference/global/#interpolate",
	},
	diag.CodeOutputConcat: {
		Code:        diag.CodeOutputConcat,
		Title:       "output value used in string concatenation",
		Description: "Async output values are not strings; '+' concatenation yields \"[object Object]\" in the deployed configuration. Wrap the expression with $interpolate.",
		Example:     "\"arn: \" + bucket.arn // deploys as \"arn: [object Object]\"",
		DocsURL:     "https://sst.dev/docs/reference/global/#interpolate",
	},
	diag.CodeCircularDependency: {
		Code:        diag.CodeCircularDependency,
		Title:       "circular resource dependency",
		Description: "Two resources link each other, so neither can be created first. The deployment engine reports this late and opaquely; break one direction of the cycle.",
		Example:     "const a = new sst.aws.Function(\"A\", { link: [b] });\nconst b = new sst.aws.Function(\"B\", { link: [a] });",
	},
	diag.CodeUseBeforeDeclare: {
		Code:        diag.CodeUseBeforeDeclare,
		Title:       "resource linked before its declaration",
		Description: "A link references a resource declared later in the file. With const declarations this throws at deploy time; move the dependency above its first use.",
		Example:     "const api = new sst.aws.Function(\"Api\", { link: [table] });\nconst table = new sst.aws.Dynamo(\"Table\", { /* ... */ });",
	},
	diag.CodeUnindexedField: {
		Code:        diag.CodeUnindexedField,
		Title:       "table field not used by any index",
		Description: "DynamoDB only persists fields that participate in an index or the TTL attribute; extra declared fields are dead weight in the definition and mislead readers about the schema.",
		Example:     "fields: { id: \"string\", extra: \"string\" },\nprimaryIndex: { hashKey: \"id\" } // \"extra\" is never indexed",
		DocsURL:     "https://sst.dev/docs/component/aws/dynamo/#fields",
	},
	diag.CodeCorsLegacyName: {
		Code:        diag.CodeCorsLegacyName,
		Title:       "legacy CORS property name",
		Description: "The cors block uses allow*/expose* property names. The allowed*/exposed* spellings from v2 are syntactically legal and silently ignored, leaving CORS unconfigured.",
		Example:     "cors: { allowedOrigins: [\"*\"] } // ignored; use allowOrigins",
		DocsURL:     "https://sst.dev/docs/component/aws/apigatewayv2/#cors",
	},
	diag.CodeReservedEnvVar: {
		Code:        diag.CodeReservedEnvVar,
		Title:       "reserved runtime environment variable",
		Description: "Lambda rejects functions that set runtime-reserved environment variables; the deployment fails with an opaque provider error. Rename the variable.",
		Example:     "environment: { AWS_REGION: \"eu-central-1\" }",
		DocsURL:     "https://docs.aws.amazon.com/lambda/latest/dg/configuration-envvars.html#configuration-envvars-runtime",
	},
	diag.CodeDomainMalformed: {
		Code:        diag.CodeDomainMalformed,
		Title:       "malformed domain value",
		Description: "Domain values are bare hostnames. A URL scheme or a trailing dot makes certificate lookup and DNS validation fail after minutes of waiting, not at deploy start.",
		Example:     "domain: \"https://example.com\" // should be \"example.com\"",
	},
	diag.CodeDomainWrongProperty: {
		Code:        diag.CodeDomainWrongProperty,
		Title:       "domainName instead of domain",
		Description: "The property is called domain. domainName is accepted by the type-erased config object and silently ignored, deploying without the custom domain.",
		Example:     "domainName: \"example.com\" // ignored; use domain",
	},
}

// Lookup returns the catalog entry for a code.
func Lookup(code diag.Code) (Entry, bool) {
	e, ok := entries[code]
	return e, ok
}

// All returns every entry ordered by code.
func All() []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
