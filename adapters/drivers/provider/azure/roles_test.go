package azure

import (
	"testing"

	"github.com/google/uuid"
)

func TestRoleDefinitionID(t *testing.T) {
	d := &driver{AzureSubscriptionId: "00000000-0000-0000-0000-000000000001"}
	got := d.roleDefinitionID(roleDefIDKeyVaultSecretsUser)
	want := "/subscriptions/00000000-0000-0000-0000-000000000001/providers/Microsoft.Authorization/roleDefinitions/4633458b-17de-408a-b874-0445c86b69e6"
	if got != want {
		t.Errorf("roleDefinitionID = %q", got)
	}
}

func TestRoleAssignmentNameStability(t *testing.T) {
	in := "scope|principal|roledef"
	n1 := uuid.NewSHA1(roleAssignmentNamespace, []byte(in)).String()
	n2 := uuid.NewSHA1(roleAssignmentNamespace, []byte(in)).String()
	if n1 != n2 {
		t.Fatalf("role assignment name not stable: %s vs %s", n1, n2)
	}
	n3 := uuid.NewSHA1(roleAssignmentNamespace, []byte("scope|other|roledef")).String()
	if n1 == n3 {
		t.Fatalf("different principals must not share an assignment name")
	}
}
