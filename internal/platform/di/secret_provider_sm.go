// internal/platform/di/secret_provider_sm.go
package di

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// webAPIKeySecretProviderSM loads the Firebase web API key from Secret
// Manager when FIREBASE_WEB_API_KEY is not set in the environment.
type webAPIKeySecretProviderSM struct {
	sm        *secretmanager.Client
	projectID string
	secretID  string
	version   string
}

func (p *webAPIKeySecretProviderSM) Get(ctx context.Context) (string, error) {
	if p == nil || p.sm == nil {
		return "", errors.New("di: secret provider not configured")
	}
	prj := strings.TrimSpace(p.projectID)
	if prj == "" {
		return "", errors.New("webAPIKeySecretProviderSM: projectID is empty")
	}
	sid := strings.TrimSpace(p.secretID)
	if sid == "" {
		return "", errors.New("webAPIKeySecretProviderSM: secretID is empty")
	}
	ver := strings.TrimSpace(p.version)
	if ver == "" {
		ver = "latest"
	}

	name := "projects/" + prj + "/secrets/" + sid + "/versions/" + ver
	resp, err := p.sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("webAPIKeySecretProviderSM: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("webAPIKeySecretProviderSM: empty payload (" + name + ")")
	}

	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
