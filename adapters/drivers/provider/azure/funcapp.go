package azure

import (
	"context"
	"fmt"
	"sort"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"
	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/logging"
)

// App setting keys rendered into the function app.
const (
	settingWebJobsStorage   = "AzureWebJobsStorage"
	settingRuntime          = "FUNCTIONS_WORKER_RUNTIME"
	settingExtensionVersion = "FUNCTIONS_EXTENSION_VERSION"
	settingRunFromPackage   = "WEBSITE_RUN_FROM_PACKAGE"
	settingAccountSID       = "MESSAGING_ACCOUNT_SID"
	settingAuthToken        = "MESSAGING_AUTH_TOKEN"
	settingSender           = "MESSAGING_SENDER"
)

// linuxFxLabels maps worker runtimes to their LinuxFxVersion label.
var linuxFxLabels = map[string]string{
	"node":       "Node",
	"python":     "Python",
	"dotnet":     "DOTNET-ISOLATED",
	"java":       "Java",
	"powershell": "PowerShell",
}

// keyVaultReference renders an app-setting value resolved from a vault
// secret by the app's managed identity at runtime.
func keyVaultReference(secretURI string) string {
	return fmt.Sprintf("@Microsoft.KeyVault(SecretUri=%s)", secretURI)
}

// buildAppSettings assembles the full app settings list. secretURIs must be
// in model.SecretNames order. Extra settings from config merge last but
// cannot shadow the managed keys.
func buildAppSettings(stack *model.Stack, connString, packageURL string, secretURIs []string) ([]*armappservice.NameValuePair, error) {
	if len(secretURIs) != 3 {
		return nil, fmt.Errorf("expected 3 secret URIs, got %d", len(secretURIs))
	}

	settings := map[string]string{
		settingWebJobsStorage:   connString,
		settingRuntime:          stack.App.Runtime,
		settingExtensionVersion: "~4",
		settingRunFromPackage:   packageURL,
		settingAccountSID:       keyVaultReference(secretURIs[0]),
		settingAuthToken:        keyVaultReference(secretURIs[1]),
		settingSender:           keyVaultReference(secretURIs[2]),
	}
	for k, v := range stack.App.ExtraSettings {
		if _, managed := settings[k]; managed {
			return nil, fmt.Errorf("app setting %s is managed and cannot be overridden", k)
		}
		settings[k] = v
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]*armappservice.NameValuePair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, &armappservice.NameValuePair{
			Name:  to.Ptr(k),
			Value: to.Ptr(settings[k]),
		})
	}
	return pairs, nil
}

// linuxFxVersion renders the site runtime stack string, e.g. "Node|20".
func linuxFxVersion(stack *model.Stack) (string, error) {
	if stack.App.Runtime == "custom" {
		return "", nil
	}
	label, ok := linuxFxLabels[stack.App.Runtime]
	if !ok {
		return "", fmt.Errorf("unsupported runtime: %s", stack.App.Runtime)
	}
	if stack.App.RuntimeVer == "" {
		return "", fmt.Errorf("runtime version required for %s", stack.App.Runtime)
	}
	return fmt.Sprintf("%s|%s", label, stack.App.RuntimeVer), nil
}

// ensureFunctionApp creates or updates the function app and returns the
// principal ID of its system-assigned identity and its default hostname.
func (d *driver) ensureFunctionApp(ctx context.Context, stack *model.Stack, rg, appName, planID string, appSettings []*armappservice.NameValuePair) (principalID, hostname string, err error) {
	log := logging.FromContext(ctx)

	webAppsClient, err := armappservice.NewWebAppsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", "", fmt.Errorf("new web apps client: %w", err)
	}

	fx, err := linuxFxVersion(stack)
	if err != nil {
		return "", "", err
	}

	log.Info(ctx, "deploying function app", "app", appName, "resource_group", rg)
	site := armappservice.Site{
		Location: to.Ptr(stack.Location),
		Kind:     to.Ptr("functionapp,linux"),
		Tags:     d.stackTags(stack),
		Identity: &armappservice.ManagedServiceIdentity{
			Type: to.Ptr(armappservice.ManagedServiceIdentityTypeSystemAssigned),
		},
		Properties: &armappservice.SiteProperties{
			ServerFarmID: to.Ptr(planID),
			HTTPSOnly:    to.Ptr(true),
			SiteConfig: &armappservice.SiteConfig{
				AppSettings:   appSettings,
				MinTLSVersion: to.Ptr(armappservice.SupportedTLSVersionsOne2),
				FtpsState:     to.Ptr(armappservice.FtpsStateDisabled),
				Http20Enabled: to.Ptr(true),
			},
		},
	}
	if fx != "" {
		site.Properties.SiteConfig.LinuxFxVersion = to.Ptr(fx)
	}

	poller, err := webAppsClient.BeginCreateOrUpdate(ctx, rg, appName, site, nil)
	if err != nil {
		return "", "", fmt.Errorf("begin create function app: %w", err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", "", fmt.Errorf("create function app: %w", err)
	}

	if resp.Identity == nil || resp.Identity.PrincipalID == nil || *resp.Identity.PrincipalID == "" {
		return "", "", fmt.Errorf("function app %s has no managed identity principal", appName)
	}
	if resp.Properties == nil || resp.Properties.DefaultHostName == nil || *resp.Properties.DefaultHostName == "" {
		return "", "", fmt.Errorf("function app %s has no default hostname", appName)
	}
	return *resp.Identity.PrincipalID, *resp.Properties.DefaultHostName, nil
}

// functionAppInfo returns existence, state, and hostname of the app.
func (d *driver) functionAppInfo(ctx context.Context, rg, appName string) (exists bool, state, hostname string, err error) {
	webAppsClient, err := armappservice.NewWebAppsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, "", "", fmt.Errorf("new web apps client: %w", err)
	}
	resp, err := webAppsClient.Get(ctx, rg, appName, nil)
	if err != nil {
		if isNotFound(err) {
			return false, "", "", nil
		}
		return false, "", "", err
	}
	if resp.Properties != nil {
		if resp.Properties.State != nil {
			state = *resp.Properties.State
		}
		if resp.Properties.DefaultHostName != nil {
			hostname = *resp.Properties.DefaultHostName
		}
	}
	return true, state, hostname, nil
}
