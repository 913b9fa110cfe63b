package azure

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/logging"
)

// sasValidity is how long package read SAS URLs stay usable. Run-from-package
// reads the archive on cold start, so the URL must outlive the deploy itself.
const sasValidity = 365 * 24 * time.Hour

// ensureStorageAccount creates the storage account if it doesn't exist.
func (d *driver) ensureStorageAccount(ctx context.Context, stack *model.Stack, rg, accountName string) error {
	log := logging.FromContext(ctx)

	accountsClient, err := armstorage.NewAccountsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("new storage accounts client: %w", err)
	}

	if _, err := accountsClient.GetProperties(ctx, rg, accountName, nil); err == nil {
		// Account already exists
		return nil
	}

	log.Info(ctx, "creating storage account", "account", accountName, "resource_group", rg)
	params := armstorage.AccountCreateParameters{
		SKU: &armstorage.SKU{
			Name: to.Ptr(armstorage.SKUNameStandardLRS),
		},
		Kind:     to.Ptr(armstorage.KindStorageV2),
		Location: to.Ptr(stack.Location),
		Tags:     d.stackTags(stack),
		Properties: &armstorage.AccountPropertiesCreateParameters{
			AllowBlobPublicAccess:  to.Ptr(false),
			AllowSharedKeyAccess:   to.Ptr(true),
			MinimumTLSVersion:      to.Ptr(armstorage.MinimumTLSVersionTLS12),
			EnableHTTPSTrafficOnly: to.Ptr(true),
		},
	}

	poller, err := accountsClient.BeginCreate(ctx, rg, accountName, params, nil)
	if err != nil {
		return fmt.Errorf("begin create storage account: %w", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("create storage account: %w", err)
	}
	log.Info(ctx, "storage account created", "account", accountName)
	return nil
}

// storageAccountExists reports whether the account exists in the group.
func (d *driver) storageAccountExists(ctx context.Context, rg, accountName string) (bool, error) {
	accountsClient, err := armstorage.NewAccountsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, fmt.Errorf("new storage accounts client: %w", err)
	}
	if _, err := accountsClient.GetProperties(ctx, rg, accountName, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// storageAccountKey returns the first shared key of the account.
func (d *driver) storageAccountKey(ctx context.Context, rg, accountName string) (string, error) {
	accountsClient, err := armstorage.NewAccountsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("new storage accounts client: %w", err)
	}
	keys, err := accountsClient.ListKeys(ctx, rg, accountName, nil)
	if err != nil {
		return "", fmt.Errorf("list storage account keys: %w", err)
	}
	for _, k := range keys.Keys {
		if k.Value != nil && *k.Value != "" {
			return *k.Value, nil
		}
	}
	return "", fmt.Errorf("storage account %s has no usable keys", accountName)
}

// storageConnectionString renders the AzureWebJobsStorage connection string.
func storageConnectionString(accountName, key string) string {
	return fmt.Sprintf("DefaultEndpointsProtocol=https;AccountName=%s;AccountKey=%s;EndpointSuffix=core.windows.net", accountName, key)
}

// uploadPackage uploads the archive at zipPath into the package container
// and returns a long-lived read-only SAS URL for run-from-package.
func (d *driver) uploadPackage(ctx context.Context, accountName, accountKey, blobName, zipPath string) (string, error) {
	log := logging.FromContext(ctx)

	cred, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return "", fmt.Errorf("new shared key credential: %w", err)
	}
	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net", accountName)
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
	if err != nil {
		return "", fmt.Errorf("new blob client: %w", err)
	}

	if _, err := client.CreateContainer(ctx, packageContainer, nil); err != nil {
		if !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return "", fmt.Errorf("create package container: %w", err)
		}
	}

	f, err := os.Open(zipPath)
	if err != nil {
		return "", fmt.Errorf("open package: %w", err)
	}
	defer f.Close()

	log.Info(ctx, "uploading package", "container", packageContainer, "blob", blobName)
	if _, err := client.UploadFile(ctx, packageContainer, blobName, f, nil); err != nil {
		return "", fmt.Errorf("upload package: %w", err)
	}

	sig, err := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		StartTime:     time.Now().UTC().Add(-5 * time.Minute),
		ExpiryTime:    time.Now().UTC().Add(sasValidity),
		Permissions:   to.Ptr(sas.BlobPermissions{Read: true}).String(),
		ContainerName: packageContainer,
		BlobName:      blobName,
	}.SignWithSharedKey(cred)
	if err != nil {
		return "", fmt.Errorf("sign package SAS: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s?%s", serviceURL, packageContainer, blobName, sig.Encode()), nil
}
