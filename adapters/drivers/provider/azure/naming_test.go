package azure

import (
	"testing"

	"github.com/funcops/funcops/domain/model"
)

func testStack() *model.Stack {
	return &model.Stack{
		Name:     "notify",
		Service:  "funcops",
		Location: "westeurope",
		Provider: "azure",
		Suffix:   "a1b2c3",
		App: model.StackApp{
			SourceDir:  "./app",
			Runtime:    "node",
			RuntimeVer: "20",
		},
	}
}

func TestStackNames(t *testing.T) {
	d := &driver{AzureSubscriptionId: "sub"}
	names, err := d.stackNames(testStack())
	if err != nil {
		t.Fatalf("stackNames: %v", err)
	}
	if names.ResourceGroup != "notify-rg-a1b2c3" {
		t.Errorf("ResourceGroup = %q", names.ResourceGroup)
	}
	if names.StorageAccount != "notifysta1b2c3" {
		t.Errorf("StorageAccount = %q", names.StorageAccount)
	}
	if names.Vault != "kv-notify-a1b2c3" {
		t.Errorf("Vault = %q", names.Vault)
	}
	if names.Plan != "notify-plan-a1b2c3" {
		t.Errorf("Plan = %q", names.Plan)
	}
	if names.FunctionApp != "notify-func-a1b2c3" {
		t.Errorf("FunctionApp = %q", names.FunctionApp)
	}
}

func TestStackNamesResourceGroupOverride(t *testing.T) {
	d := &driver{AzureSubscriptionId: "sub"}
	s := testStack()
	s.Settings = map[string]string{"AZURE_RESOURCE_GROUP_NAME": "custom-rg"}
	names, err := d.stackNames(s)
	if err != nil {
		t.Fatalf("stackNames: %v", err)
	}
	if names.ResourceGroup != "custom-rg" {
		t.Errorf("ResourceGroup override ignored: %q", names.ResourceGroup)
	}
}

func TestStackNamesRequiresSuffix(t *testing.T) {
	d := &driver{AzureSubscriptionId: "sub"}
	s := testStack()
	s.Suffix = ""
	if _, err := d.stackNames(s); err == nil {
		t.Fatal("expected error for unresolved suffix")
	}
}

func TestLinuxFxVersion(t *testing.T) {
	tests := []struct {
		runtime string
		ver     string
		want    string
		wantErr bool
	}{
		{"node", "20", "Node|20", false},
		{"python", "3.11", "Python|3.11", false},
		{"dotnet", "8.0", "DOTNET-ISOLATED|8.0", false},
		{"custom", "", "", false},
		{"node", "", "", true},
		{"erlang", "27", "", true},
	}
	for _, tt := range tests {
		s := testStack()
		s.App.Runtime = tt.runtime
		s.App.RuntimeVer = tt.ver
		got, err := linuxFxVersion(s)
		if (err != nil) != tt.wantErr {
			t.Errorf("linuxFxVersion(%s, %s) error = %v, wantErr %v", tt.runtime, tt.ver, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("linuxFxVersion(%s, %s) = %q, want %q", tt.runtime, tt.ver, got, tt.want)
		}
	}
}
