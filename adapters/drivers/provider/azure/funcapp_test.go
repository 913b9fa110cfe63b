package azure

import (
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"
)

func pairsToMap(t *testing.T, pairs []*armappservice.NameValuePair) map[string]string {
	t.Helper()
	m := map[string]string{}
	for _, p := range pairs {
		m[*p.Name] = *p.Value
	}
	return m
}

func TestBuildAppSettings(t *testing.T) {
	s := testStack()
	s.App.ExtraSettings = map[string]string{"WEBSITE_TIME_ZONE": "UTC"}
	uris := []string{
		"https://kv-notify-a1b2c3.vault.azure.net/secrets/messaging-account-sid",
		"https://kv-notify-a1b2c3.vault.azure.net/secrets/messaging-auth-token",
		"https://kv-notify-a1b2c3.vault.azure.net/secrets/messaging-sender",
	}
	pairs, err := buildAppSettings(s, "DefaultEndpointsProtocol=https;AccountName=x;AccountKey=y;EndpointSuffix=core.windows.net", "https://x.blob.core.windows.net/p/package.zip?sig=abc", uris)
	if err != nil {
		t.Fatalf("buildAppSettings: %v", err)
	}
	m := pairsToMap(t, pairs)

	if m[settingRuntime] != "node" {
		t.Errorf("%s = %q", settingRuntime, m[settingRuntime])
	}
	if m[settingExtensionVersion] != "~4" {
		t.Errorf("%s = %q", settingExtensionVersion, m[settingExtensionVersion])
	}
	if !strings.Contains(m[settingRunFromPackage], "package.zip") {
		t.Errorf("%s = %q", settingRunFromPackage, m[settingRunFromPackage])
	}
	if m[settingAccountSID] != "@Microsoft.KeyVault(SecretUri="+uris[0]+")" {
		t.Errorf("%s = %q", settingAccountSID, m[settingAccountSID])
	}
	if m[settingAuthToken] != "@Microsoft.KeyVault(SecretUri="+uris[1]+")" {
		t.Errorf("%s = %q", settingAuthToken, m[settingAuthToken])
	}
	if m[settingSender] != "@Microsoft.KeyVault(SecretUri="+uris[2]+")" {
		t.Errorf("%s = %q", settingSender, m[settingSender])
	}
	if m["WEBSITE_TIME_ZONE"] != "UTC" {
		t.Errorf("extra setting lost: %v", m)
	}
}

func TestBuildAppSettingsRejectsManagedOverride(t *testing.T) {
	s := testStack()
	s.App.ExtraSettings = map[string]string{settingWebJobsStorage: "evil"}
	_, err := buildAppSettings(s, "conn", "url", []string{"a", "b", "c"})
	if err == nil {
		t.Fatal("expected error for managed key override")
	}
}

func TestBuildAppSettingsRequiresThreeURIs(t *testing.T) {
	if _, err := buildAppSettings(testStack(), "conn", "url", []string{"a"}); err == nil {
		t.Fatal("expected error for wrong URI count")
	}
}

func TestStorageConnectionString(t *testing.T) {
	got := storageConnectionString("notifyst", "key==")
	want := "DefaultEndpointsProtocol=https;AccountName=notifyst;AccountKey=key==;EndpointSuffix=core.windows.net"
	if got != want {
		t.Errorf("storageConnectionString = %q", got)
	}
}
