package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/keyvault/armkeyvault"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/logging"
)

const keyTenantID = "AZURE_TENANT_ID"

// tenantID returns the tenant for vault creation: the configured setting
// when present, otherwise the first tenant visible to the credential.
func (d *driver) tenantID(ctx context.Context, stack *model.Stack) (string, error) {
	if stack.Settings != nil {
		if v := stack.Settings[keyTenantID]; v != "" {
			return v, nil
		}
	}

	tenantsClient, err := armsubscriptions.NewTenantsClient(d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("new tenants client: %w", err)
	}
	pager := tenantsClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("list tenants: %w", err)
		}
		for _, t := range page.Value {
			if t.TenantID != nil && *t.TenantID != "" {
				return *t.TenantID, nil
			}
		}
	}
	return "", fmt.Errorf("no tenant visible to credential; set %s", keyTenantID)
}

// ensureKeyVault creates the RBAC-authorized vault if needed and returns its
// resource ID (the scope used for role assignments).
func (d *driver) ensureKeyVault(ctx context.Context, stack *model.Stack, rg, vaultName, tenantID string) (string, error) {
	log := logging.FromContext(ctx)

	vaultsClient, err := armkeyvault.NewVaultsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("new vaults client: %w", err)
	}

	if existing, err := vaultsClient.Get(ctx, rg, vaultName, nil); err == nil {
		if existing.ID != nil {
			return *existing.ID, nil
		}
	}

	log.Info(ctx, "creating key vault", "vault", vaultName, "resource_group", rg)
	params := armkeyvault.VaultCreateOrUpdateParameters{
		Location: to.Ptr(stack.Location),
		Tags:     d.stackTags(stack),
		Properties: &armkeyvault.VaultProperties{
			TenantID: to.Ptr(tenantID),
			SKU: &armkeyvault.SKU{
				Family: to.Ptr(armkeyvault.SKUFamilyA),
				Name:   to.Ptr(armkeyvault.SKUNameStandard),
			},
			EnableRbacAuthorization:   to.Ptr(true),
			EnableSoftDelete:          to.Ptr(true),
			SoftDeleteRetentionInDays: to.Ptr[int32](7),
		},
	}
	poller, err := vaultsClient.BeginCreateOrUpdate(ctx, rg, vaultName, params, nil)
	if err != nil {
		return "", fmt.Errorf("begin create key vault: %w", err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("create key vault: %w", err)
	}
	if resp.ID == nil {
		return "", fmt.Errorf("key vault %s has no resource ID", vaultName)
	}
	return *resp.ID, nil
}

// keyVaultExists reports whether the vault exists in the group.
func (d *driver) keyVaultExists(ctx context.Context, rg, vaultName string) (bool, error) {
	vaultsClient, err := armkeyvault.NewVaultsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, fmt.Errorf("new vaults client: %w", err)
	}
	if _, err := vaultsClient.Get(ctx, rg, vaultName, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// setSecrets writes the messaging credential set into the vault and returns
// the versionless secret URIs in model.SecretNames order. Versionless URIs
// keep app settings stable across secret rotations.
func (d *driver) setSecrets(ctx context.Context, rg, vaultName string, secrets *model.StackSecrets) ([]string, error) {
	log := logging.FromContext(ctx)

	secretsClient, err := armkeyvault.NewSecretsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return nil, fmt.Errorf("new secrets client: %w", err)
	}

	values := secrets.Values()
	uris := make([]string, 0, len(model.SecretNames))
	for i, name := range model.SecretNames {
		params := armkeyvault.SecretCreateOrUpdateParameters{
			Properties: &armkeyvault.SecretProperties{
				Value: to.Ptr(values[i]),
			},
		}
		resp, err := secretsClient.CreateOrUpdate(ctx, rg, vaultName, name, params, nil)
		if err != nil {
			return nil, fmt.Errorf("set secret %s: %w", name, err)
		}
		if resp.Properties == nil || resp.Properties.SecretURI == nil || *resp.Properties.SecretURI == "" {
			return nil, fmt.Errorf("secret %s has no URI", name)
		}
		uris = append(uris, *resp.Properties.SecretURI)
		log.Info(ctx, "secret written", "vault", vaultName, "secret", name)
	}
	return uris, nil
}

// purgeKeyVault purges the soft-deleted vault to allow immediate recreation.
// Fire-and-forget: initiate purge without waiting for completion.
func (d *driver) purgeKeyVault(ctx context.Context, vaultName, location string) {
	log := logging.FromContext(ctx)

	vaultsClient, err := armkeyvault.NewVaultsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		log.Warn(ctx, "failed to create key vault client for purge", "error", err)
		return
	}
	log.Info(ctx, "initiating key vault purge (async)", "vault", vaultName, "location", location)
	if _, err := vaultsClient.BeginPurgeDeleted(ctx, vaultName, location, nil); err != nil {
		log.Warn(ctx, "failed to start key vault purge", "error", shortErrorString(err), "vault", vaultName)
	}
}
