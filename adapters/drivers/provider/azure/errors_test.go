package azure

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

func TestIsNotFound(t *testing.T) {
	if isNotFound(errors.New("plain")) {
		t.Error("plain error must not be a 404")
	}
	respErr := &azcore.ResponseError{StatusCode: http.StatusNotFound}
	if !isNotFound(respErr) {
		t.Error("404 ResponseError not detected")
	}
	if isNotFound(&azcore.ResponseError{StatusCode: http.StatusForbidden}) {
		t.Error("403 must not be a 404")
	}
}

func TestShortErrorString(t *testing.T) {
	if got := shortErrorString(nil); got != "" {
		t.Errorf("nil error = %q", got)
	}
	multi := errors.New("first line\nsecond line\nthird line")
	if got := shortErrorString(multi); got != "first line" {
		t.Errorf("multiline = %q", got)
	}
	long := errors.New(strings.Repeat("x", 400))
	if got := shortErrorString(long); len(got) != 203 {
		t.Errorf("long error not truncated: %d chars", len(got))
	}
}
