package naming

import (
	"strings"
	"testing"
)

func TestNewHashesStability(t *testing.T) {
	h1 := NewHashes("svc", "stack1")
	h2 := NewHashes("svc", "stack1")
	if h1 != h2 {
		t.Fatalf("hashes not stable: %#v vs %#v", h1, h2)
	}
	h3 := NewHashes("svc", "stack2")
	if h1.Stack == h3.Stack {
		t.Fatalf("Stack hash should change when stack changes: %s == %s", h1.Stack, h3.Stack)
	}
	if h1.Service != h3.Service {
		t.Fatalf("Service hash should be stack independent: %s vs %s", h1.Service, h3.Service)
	}
}

func TestStorageAccountName(t *testing.T) {
	tests := []struct {
		stack  string
		suffix string
		want   string
	}{
		{"notify", "a1b2c3", "notifysta1b2c3"},
		{"my-stack", "a1b2c3", "mystacksta1b2c3"},
		{"averylongstackname-with-dashes", "a1b2c3d4", "averylongstacknaa1b2c3d4"},
	}
	for _, tt := range tests {
		got, err := StorageAccountName(tt.stack, tt.suffix)
		if err != nil {
			t.Fatalf("StorageAccountName(%q, %q): %v", tt.stack, tt.suffix, err)
		}
		if got != tt.want {
			t.Errorf("StorageAccountName(%q, %q) = %q, want %q", tt.stack, tt.suffix, got, tt.want)
		}
		if len(got) > 24 {
			t.Errorf("storage account name %q exceeds 24 chars", got)
		}
		if got != alnum(got) {
			t.Errorf("storage account name %q contains invalid characters", got)
		}
	}
}

func TestVaultNameLimits(t *testing.T) {
	got, err := VaultName("a-very-long-stack-name-indeed", "a1b2c3d4")
	if err != nil {
		t.Fatalf("VaultName: %v", err)
	}
	if len(got) > 24 {
		t.Errorf("vault name %q exceeds 24 chars", got)
	}
	if !strings.HasPrefix(got, "kv-") {
		t.Errorf("vault name %q missing kv- prefix", got)
	}
	if !strings.HasSuffix(got, "a1b2c3d4") {
		t.Errorf("vault name %q lost its suffix", got)
	}
}

func TestResourceGroupAndSiteNames(t *testing.T) {
	rg, err := ResourceGroupName("notify", "a1b2c3")
	if err != nil {
		t.Fatalf("ResourceGroupName: %v", err)
	}
	if rg != "notify-rg-a1b2c3" {
		t.Errorf("ResourceGroupName = %q", rg)
	}
	app, err := FunctionAppName("notify", "a1b2c3")
	if err != nil {
		t.Fatalf("FunctionAppName: %v", err)
	}
	if app != "notify-func-a1b2c3" {
		t.Errorf("FunctionAppName = %q", app)
	}
	plan, err := PlanName("notify", "a1b2c3")
	if err != nil {
		t.Fatalf("PlanName: %v", err)
	}
	if plan != "notify-plan-a1b2c3" {
		t.Errorf("PlanName = %q", plan)
	}
}

func TestSafeTruncatePreservesSuffix(t *testing.T) {
	long := strings.Repeat("x", 200)
	got, err := safeTruncate(long, "abc123", "-", 30)
	if err != nil {
		t.Fatalf("safeTruncate: %v", err)
	}
	if len(got) > 30 {
		t.Errorf("result %q exceeds limit", got)
	}
	if !strings.HasSuffix(got, "-abc123") {
		t.Errorf("result %q lost its suffix", got)
	}
}
