package azure

// Resource naming for the Azure driver.
//
// Rules:
//   resource group:  {stack}-rg-{suffix}    (override: AZURE_RESOURCE_GROUP_NAME)
//   storage account: {stack}st{suffix}      (lowercase alnum, <=24)
//   key vault:       kv-{stack}-{suffix}    (<=24)
//   plan:            {stack}-plan-{suffix}
//   function app:    {stack}-func-{suffix}
// The suffix is resolved by the use case layer (deterministic hash or
// persisted random value) before the driver sees the stack.

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/naming"
)

const keyResourceGroupName = "AZURE_RESOURCE_GROUP_NAME"

// packageContainer is the private blob container holding deployment archives.
const packageContainer = "funcops-packages"

// stackNames resolves every Azure resource name for a stack once.
type stackNames struct {
	ResourceGroup  string
	StorageAccount string
	Vault          string
	Plan           string
	FunctionApp    string
}

func (d *driver) stackNames(stack *model.Stack) (*stackNames, error) {
	if stack == nil {
		return nil, fmt.Errorf("stack nil")
	}
	if stack.Suffix == "" {
		return nil, fmt.Errorf("stack suffix unresolved")
	}

	rg := ""
	if stack.Settings != nil {
		rg = stack.Settings[keyResourceGroupName]
	}
	var err error
	if rg == "" {
		if rg, err = naming.ResourceGroupName(stack.Name, stack.Suffix); err != nil {
			return nil, fmt.Errorf("resource group name: %w", err)
		}
	}
	st, err := naming.StorageAccountName(stack.Name, stack.Suffix)
	if err != nil {
		return nil, fmt.Errorf("storage account name: %w", err)
	}
	kv, err := naming.VaultName(stack.Name, stack.Suffix)
	if err != nil {
		return nil, fmt.Errorf("vault name: %w", err)
	}
	plan, err := naming.PlanName(stack.Name, stack.Suffix)
	if err != nil {
		return nil, fmt.Errorf("plan name: %w", err)
	}
	app, err := naming.FunctionAppName(stack.Name, stack.Suffix)
	if err != nil {
		return nil, fmt.Errorf("function app name: %w", err)
	}

	return &stackNames{
		ResourceGroup:  rg,
		StorageAccount: st,
		Vault:          kv,
		Plan:           plan,
		FunctionApp:    app,
	}, nil
}

// stackTags returns the common resource tags for a stack.
func (d *driver) stackTags(stack *model.Stack) map[string]*string {
	return map[string]*string{
		"managed-by":    to.Ptr("funcops"),
		"funcops-stack": to.Ptr(fmt.Sprintf("%s/%s", stack.Service, stack.Name)),
	}
}
