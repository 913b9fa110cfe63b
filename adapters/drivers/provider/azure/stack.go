package azure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/funcops/funcops/domain/model"
	"github.com/funcops/funcops/internal/archive"
	"github.com/funcops/funcops/internal/logging"
)

// Provision converges the whole stack in dependency order: resource group,
// storage account, key vault, secrets, consumption plan, package archive,
// function app, vault role assignment. Every step is idempotent.
func (d *driver) Provision(ctx context.Context, stack *model.Stack) (*model.StackOutputs, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	log := logging.FromContext(ctx)

	if stack.Secrets == nil {
		return nil, model.ErrSecretsMissing
	}
	names, err := d.stackNames(stack)
	if err != nil {
		return nil, err
	}
	log = log.With("stack", stack.Name, "resource_group", names.ResourceGroup)
	ctx = logging.WithLogger(ctx, log)

	if err := d.ensureResourceGroup(ctx, stack, names.ResourceGroup); err != nil {
		return nil, err
	}

	if err := d.ensureStorageAccount(ctx, stack, names.ResourceGroup, names.StorageAccount); err != nil {
		return nil, err
	}
	accountKey, err := d.storageAccountKey(ctx, names.ResourceGroup, names.StorageAccount)
	if err != nil {
		return nil, err
	}

	tenantID, err := d.tenantID(ctx, stack)
	if err != nil {
		return nil, err
	}
	vaultID, err := d.ensureKeyVault(ctx, stack, names.ResourceGroup, names.Vault, tenantID)
	if err != nil {
		return nil, err
	}
	secretURIs, err := d.setSecrets(ctx, names.ResourceGroup, names.Vault, stack.Secrets)
	if err != nil {
		return nil, err
	}

	planID, err := d.ensureConsumptionPlan(ctx, stack, names.ResourceGroup, names.Plan)
	if err != nil {
		return nil, err
	}

	packageURL, packageHash, err := d.stagePackage(ctx, stack, names, accountKey)
	if err != nil {
		return nil, err
	}

	connString := storageConnectionString(names.StorageAccount, accountKey)
	appSettings, err := buildAppSettings(stack, connString, packageURL, secretURIs)
	if err != nil {
		return nil, err
	}
	principalID, hostname, err := d.ensureFunctionApp(ctx, stack, names.ResourceGroup, names.FunctionApp, planID, appSettings)
	if err != nil {
		return nil, err
	}

	if err := d.ensureVaultReaderRole(ctx, vaultID, principalID); err != nil {
		return nil, err
	}

	log.Info(ctx, "stack provisioned", "app", names.FunctionApp, "hostname", hostname)
	return &model.StackOutputs{
		FunctionAppName: names.FunctionApp,
		DefaultHostname: hostname,
		PackageHash:     packageHash,
	}, nil
}

// stagePackage zips the app source and uploads it, returning the
// run-from-package URL and the archive content hash.
func (d *driver) stagePackage(ctx context.Context, stack *model.Stack, names *stackNames, accountKey string) (string, string, error) {
	tmp, err := os.MkdirTemp("", "funcops-package-*")
	if err != nil {
		return "", "", fmt.Errorf("create package workdir: %w", err)
	}
	defer os.RemoveAll(tmp)

	zipPath := filepath.Join(tmp, "package.zip")
	hash, err := archive.Package(stack.App.SourceDir, zipPath)
	if err != nil {
		return "", "", fmt.Errorf("package app source: %w", err)
	}

	url, err := d.uploadPackage(ctx, names.StorageAccount, accountKey, archive.BlobName(hash), zipPath)
	if err != nil {
		return "", "", err
	}
	return url, hash, nil
}

// Deprovision deletes the stack resource group and purges the soft-deleted
// key vault so the name can be reused immediately.
func (d *driver) Deprovision(ctx context.Context, stack *model.Stack) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	defer cancel()

	names, err := d.stackNames(stack)
	if err != nil {
		return err
	}

	if err := d.deleteResourceGroup(ctx, names.ResourceGroup); err != nil {
		return err
	}
	d.purgeKeyVault(ctx, names.Vault, stack.Location)
	return nil
}

// Status reports per-resource existence for the stack.
func (d *driver) Status(ctx context.Context, stack *model.Stack) (*model.StackStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	names, err := d.stackNames(stack)
	if err != nil {
		return nil, err
	}

	status := &model.StackStatus{}
	status.ResourceGroup, err = d.resourceGroupExists(ctx, names.ResourceGroup)
	if err != nil {
		return status, err
	}
	if !status.ResourceGroup {
		return status, nil
	}

	if status.StorageAccount, err = d.storageAccountExists(ctx, names.ResourceGroup, names.StorageAccount); err != nil {
		return status, err
	}
	if status.KeyVault, err = d.keyVaultExists(ctx, names.ResourceGroup, names.Vault); err != nil {
		return status, err
	}
	if status.Plan, err = d.planExists(ctx, names.ResourceGroup, names.Plan); err != nil {
		return status, err
	}
	exists, state, _, err := d.functionAppInfo(ctx, names.ResourceGroup, names.FunctionApp)
	if err != nil {
		return status, err
	}
	status.FunctionApp = exists
	status.AppState = state
	status.Provisioned = status.StorageAccount && status.KeyVault && status.Plan && status.FunctionApp
	return status, nil
}

// Outputs returns the deployed app name and default hostname.
func (d *driver) Outputs(ctx context.Context, stack *model.Stack) (*model.StackOutputs, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	names, err := d.stackNames(stack)
	if err != nil {
		return nil, err
	}
	exists, _, hostname, err := d.functionAppInfo(ctx, names.ResourceGroup, names.FunctionApp)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("function app %s not found; deploy the stack first", names.FunctionApp)
	}
	return &model.StackOutputs{
		FunctionAppName: names.FunctionApp,
		DefaultHostname: hostname,
	}, nil
}
