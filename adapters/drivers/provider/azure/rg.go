package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/logging"
)

// ensureResourceGroup creates or updates the stack resource group.
func (d *driver) ensureResourceGroup(ctx context.Context, stack *model.Stack, name string) error {
	rgClient, err := armresources.NewResourceGroupsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("new resource groups client: %w", err)
	}

	params := armresources.ResourceGroup{
		Location: to.Ptr(stack.Location),
		Tags:     d.stackTags(stack),
	}
	if _, err := rgClient.CreateOrUpdate(ctx, name, params, nil); err != nil {
		return fmt.Errorf("create resource group %s: %w", name, err)
	}
	return nil
}

// resourceGroupExists reports whether the resource group exists.
func (d *driver) resourceGroupExists(ctx context.Context, name string) (bool, error) {
	rgClient, err := armresources.NewResourceGroupsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, fmt.Errorf("new resource groups client: %w", err)
	}
	resp, err := rgClient.CheckExistence(ctx, name, nil)
	if err != nil {
		return false, fmt.Errorf("check resource group %s: %w", name, err)
	}
	return resp.Success, nil
}

// deleteResourceGroup deletes the resource group and everything in it.
// Missing groups are treated as already deleted.
func (d *driver) deleteResourceGroup(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)

	exists, err := d.resourceGroupExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		log.Info(ctx, "resource group already gone", "resource_group", name)
		return nil
	}

	rgClient, err := armresources.NewResourceGroupsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("new resource groups client: %w", err)
	}
	log.Info(ctx, "deleting resource group", "resource_group", name)
	poller, err := rgClient.BeginDelete(ctx, name, nil)
	if err != nil {
		return fmt.Errorf("begin delete resource group %s: %w", name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("delete resource group %s: %w", name, err)
	}
	return nil
}
