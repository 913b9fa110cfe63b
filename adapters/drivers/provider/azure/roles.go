package azure

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/google/uuid"
)

// roleDefIDKeyVaultSecretsUser is the built-in "Key Vault Secrets User"
// role definition GUID.
const roleDefIDKeyVaultSecretsUser = "4633458b-17de-408a-b874-0445c86b69e6"

// UUIDv5 namespace used to generate role assignment names.
// Chosen arbitrarily but kept constant to ensure stable name generation.
var roleAssignmentNamespace = uuid.MustParse("6f1c07da-2183-4e58-8a41-97c5e0a5e0d3")

// roleDefinitionID renders the full resource ID of a built-in role.
func (d *driver) roleDefinitionID(roleDefID string) string {
	return fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Authorization/roleDefinitions/%s", d.AzureSubscriptionId, roleDefID)
}

// ensureRole assigns the given role definition to the specified principal at
// the provided scope.
func (d *driver) ensureRole(ctx context.Context, scope, principalID, roleDefinitionID string) error {
	client, err := armauthorization.NewRoleAssignmentsClient(d.AzureSubscriptionId, d.TokenCredential, nil)
	if err != nil {
		return fmt.Errorf("new role assignments client: %w", err)
	}

	// Deterministic role assignment name ensures idempotency per
	// (scope, principal, role).
	nameInput := scope + "|" + principalID + "|" + roleDefinitionID
	roleAssignmentName := uuid.NewSHA1(roleAssignmentNamespace, []byte(nameInput)).String()

	roleAssignment := armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			RoleDefinitionID: to.Ptr(roleDefinitionID),
			PrincipalID:      to.Ptr(principalID),
			PrincipalType:    to.Ptr(armauthorization.PrincipalTypeServicePrincipal),
		},
	}

	_, err = client.Create(ctx, scope, roleAssignmentName, roleAssignment, nil)
	if err != nil {
		// Assignment already present is fine.
		if strings.Contains(strings.ToLower(err.Error()), "already exists") ||
			strings.Contains(strings.ToLower(err.Error()), "conflict") {
			return nil
		}
		return fmt.Errorf("create role assignment: %w", err)
	}
	return nil
}

// ensureVaultReaderRole grants the principal read access to the vault's
// secrets (Key Vault Secrets User at vault scope).
func (d *driver) ensureVaultReaderRole(ctx context.Context, vaultID, principalID string) error {
	return d.ensureRole(ctx, vaultID, principalID, d.roleDefinitionID(roleDefIDKeyVaultSecretsUser))
}
