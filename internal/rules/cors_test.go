package rules

import (
	"testing"

	"github.com/duersjefen/deploy-kit/internal/diag"
)

func TestLegacyCorsNames(t *testing.T) {
	src := `
const api = new sst.aws.ApiGatewayV2("Api", {
  cors: {
    allowedOrigins: ["https://example.com"],
    allowMethods: ["GET"],
  },
});
`
	ctx := parseSrc(t, src)
	vs := CorsNamingRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeCorsLegacyName)
	v := vs[0]
	if v.Resource != "Api" || v.Property != "allowedOrigins" {
		t.Fatalf("resource/property = %q/%q", v.Resource, v.Property)
	}
	fix := v.Fix
	if fix == nil || fix.OldCode != "allowedOrigins" || fix.NewCode != "allowOrigins" {
		t.Fatalf("fix = %+v", fix)
	}
	if fix.Confidence != diag.ConfHigh {
		t.Fatalf("confidence = %s", fix.Confidence)
	}

	// Renaming the key resolves the finding and touches nothing else.
	fixed := src[:fix.Start] + fix.NewCode + src[fix.End:]
	requireCodes(t, CorsNamingRule{}.Detect(parseSrc(t, fixed)))
}

func TestAllLegacyCorsNamesDetected(t *testing.T) {
	ctx := parseSrc(t, `
const api = new sst.aws.ApiGatewayV2("Api", {
  cors: {
    allowedOrigins: ["*"],
    allowedMethods: ["GET"],
    allowedHeaders: ["content-type"],
    exposedHeaders: ["etag"],
  },
});
`)
	vs := CorsNamingRule{}.Detect(ctx)
	if len(vs) != 4 {
		t.Fatalf("got %d violations, want 4: %v", len(vs), codesOf(vs))
	}
	renames := map[string]string{}
	for _, v := range vs {
		renames[v.Fix.OldCode] = v.Fix.NewCode
	}
	want := map[string]string{
		"allowedOrigins": "allowOrigins",
		"allowedMethods": "allowMethods",
		"allowedHeaders": "allowHeaders",
		"exposedHeaders": "exposeHeaders",
	}
	for old, cur := range want {
		if renames[old] != cur {
			t.Fatalf("rename %s = %q, want %q", old, renames[old], cur)
		}
	}
}

func TestLegacyNameOutsideCorsIgnored(t *testing.T) {
	// The names are only wrong inside cors blocks.
	ctx := parseSrc(t, `
const fn = new sst.aws.Function("Fn", {
  environment: { allowedOrigins: "whatever" },
});
const cfg = { allowedMethods: ["GET"] };
`)
	requireCodes(t, CorsNamingRule{}.Detect(ctx))
}

func TestNestedCorsBlockAttributed(t *testing.T) {
	ctx := parseSrc(t, `
const site = new sst.aws.StaticSite("Site", {
  transform: {
    api: {
      cors: { allowedHeaders: ["x-request-id"] },
    },
  },
});
`)
	vs := CorsNamingRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeCorsLegacyName)
	if vs[0].Resource != "Site" {
		t.Fatalf("resource = %q", vs[0].Resource)
	}
}
