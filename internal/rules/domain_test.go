package rules

import (
	"testing"

	"github.com/duersjefen/deploy-kit/internal/diag"
)

func TestDomainWithScheme(t *testing.T) {
	src := `
const site = new sst.aws.StaticSite("Site", {
  domain: "https://app.example.com",
});
`
	ctx := parseSrc(t, src)
	vs := DomainConfigRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeDomainMalformed)
	fix := vs[0].Fix
	if fix == nil || fix.NewCode != `"app.example.com"` {
		t.Fatalf("fix = %+v", fix)
	}
	if fix.Confidence != diag.ConfHigh {
		t.Fatalf("confidence = %s", fix.Confidence)
	}
	fixed := src[:fix.Start] + fix.NewCode + src[fix.End:]
	requireCodes(t, DomainConfigRule{}.Detect(parseSrc(t, fixed)))
}

func TestDomainTrailingDot(t *testing.T) {
	ctx := parseSrc(t, `
const site = new sst.aws.StaticSite("Site", { domain: "example.com." });
`)
	vs := DomainConfigRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeDomainMalformed)
	if vs[0].Fix.NewCode != `"example.com"` {
		t.Fatalf("fix = %q", vs[0].Fix.NewCode)
	}
}

func TestDomainSchemeAndTrailingDot(t *testing.T) {
	ctx := parseSrc(t, `
const site = new sst.aws.StaticSite("Site", { domain: "http://example.com." });
`)
	vs := DomainConfigRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeDomainMalformed)
	if vs[0].Fix.NewCode != `"example.com"` {
		t.Fatalf("fix = %q", vs[0].Fix.NewCode)
	}
}

func TestDomainObjectForm(t *testing.T) {
	ctx := parseSrc(t, `
const site = new sst.aws.StaticSite("Site", {
  domain: {
    name: "https://app.example.com",
    dns: sst.aws.dns(),
  },
});
`)
	vs := DomainConfigRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeDomainMalformed)
	if vs[0].Property != "domain.name" {
		t.Fatalf("property = %q", vs[0].Property)
	}
}

func TestDomainQuoteStylePreserved(t *testing.T) {
	ctx := parseSrc(t, `
const site = new sst.aws.StaticSite("Site", { domain: 'https://x.dev' });
`)
	vs := DomainConfigRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeDomainMalformed)
	if vs[0].Fix.NewCode != `'x.dev'` {
		t.Fatalf("fix = %q", vs[0].Fix.NewCode)
	}
}

func TestBareDomainIsFine(t *testing.T) {
	for _, src := range []string{
		`const site = new sst.aws.StaticSite("Site", { domain: "app.example.com" });`,
		`const site = new sst.aws.StaticSite("Site", { domain: { name: "app.example.com" } });`,
		`const site = new sst.aws.StaticSite("Site", { domain: $app.stage + ".example.com" });`,
	} {
		requireCodes(t, DomainConfigRule{}.Detect(parseSrc(t, src)))
	}
}

func TestDomainNameProperty(t *testing.T) {
	src := `
const site = new sst.aws.StaticSite("Site", {
  domainName: "app.example.com",
});
`
	ctx := parseSrc(t, src)
	vs := DomainConfigRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeDomainWrongProperty)
	fix := vs[0].Fix
	if fix.OldCode != "domainName" || fix.NewCode != "domain" {
		t.Fatalf("fix = %+v", fix)
	}
	fixed := src[:fix.Start] + fix.NewCode + src[fix.End:]
	requireCodes(t, DomainConfigRule{}.Detect(parseSrc(t, fixed)))
}
