package rules

import (
	"testing"

	"github.com/duersjefen/deploy-kit/internal/diag"
)

func TestReservedEnvVar(t *testing.T) {
	ctx := parseSrc(t, `
const fn = new sst.aws.Function("Api", {
  handler: "src/api.handler",
  environment: {
    AWS_REGION: "eu-central-1",
    TABLE_NAME: "users",
  },
});
`)
	vs := ReservedEnvRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeReservedEnvVar)
	v := vs[0]
	if v.Resource != "Api" || v.Property != "AWS_REGION" {
		t.Fatalf("resource/property = %q/%q", v.Resource, v.Property)
	}
	if v.Severity != diag.SevError {
		t.Fatalf("severity = %s", v.Severity)
	}
	if v.Fix != nil {
		t.Fatal("reserved names have no safe rewrite; no fix expected")
	}
}

func TestMultipleReservedVars(t *testing.T) {
	ctx := parseSrc(t, `
const fn = new sst.aws.Function("Fn", {
  environment: {
    _HANDLER: "x",
    AWS_LAMBDA_RUNTIME_API: "y",
    APP_ENV: "production",
    LAMBDA_TASK_ROOT: "z",
  },
});
`)
	vs := ReservedEnvRule{}.Detect(ctx)
	if len(vs) != 3 {
		t.Fatalf("got %d violations, want 3: %v", len(vs), codesOf(vs))
	}
}

func TestSimilarButUnreservedNamesFine(t *testing.T) {
	ctx := parseSrc(t, `
const fn = new sst.aws.Function("Fn", {
  environment: {
    AWS_REGION_OVERRIDE: "eu-central-1",
    MY_AWS_REGION: "us-east-1",
    HANDLER: "main",
  },
});
`)
	requireCodes(t, ReservedEnvRule{}.Detect(ctx))
}

func TestEnvironmentOutsideResourceStillChecked(t *testing.T) {
	// Shared config fragments spread into resources later get the same
	// scrutiny, just without resource attribution.
	ctx := parseSrc(t, `
const shared = { environment: { AWS_EXECUTION_ENV: "custom" } };
`)
	vs := ReservedEnvRule{}.Detect(ctx)
	requireCodes(t, vs, diag.CodeReservedEnvVar)
	if vs[0].Resource != "" {
		t.Fatalf("resource = %q, want empty", vs[0].Resource)
	}
}
