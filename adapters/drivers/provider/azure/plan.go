package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v4"
	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/logging"
)

// ensureConsumptionPlan creates the Linux consumption (Y1/Dynamic) plan if
// needed and returns its resource ID.
func (d *driver) ensureConsumptionPlan(ctx context.Context, stack *model.Stack, rg, planName string) (string, error) {
	log := logging.FromContext(ctx)

	plansClient, err := armappservice.NewPlansClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return "", fmt.Errorf("new plans client: %w", err)
	}

	if existing, err := plansClient.Get(ctx, rg, planName, nil); err == nil {
		if existing.ID != nil {
			return *existing.ID, nil
		}
	}

	log.Info(ctx, "creating consumption plan", "plan", planName, "resource_group", rg)
	params := armappservice.Plan{
		Location: to.Ptr(stack.Location),
		Kind:     to.Ptr("functionapp"),
		Tags:     d.stackTags(stack),
		SKU: &armappservice.SKUDescription{
			Name: to.Ptr("Y1"),
			Tier: to.Ptr("Dynamic"),
		},
		Properties: &armappservice.PlanProperties{
			// Reserved selects Linux workers.
			Reserved: to.Ptr(true),
		},
	}
	poller, err := plansClient.BeginCreateOrUpdate(ctx, rg, planName, params, nil)
	if err != nil {
		return "", fmt.Errorf("begin create plan: %w", err)
	}
	resp, err := poller.PollUntilDone(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("create plan: %w", err)
	}
	if resp.ID == nil {
		return "", fmt.Errorf("plan %s has no resource ID", planName)
	}
	return *resp.ID, nil
}

// planExists reports whether the plan exists in the group.
func (d *driver) planExists(ctx context.Context, rg, planName string) (bool, error) {
	plansClient, err := armappservice.NewPlansClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return false, fmt.Errorf("new plans client: %w", err)
	}
	if _, err := plansClient.Get(ctx, rg, planName, nil); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
