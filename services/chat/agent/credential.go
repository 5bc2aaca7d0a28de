package agent

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// tokenRefreshMargin is how long before expiry a cached token is replaced.
const tokenRefreshMargin = 2 * time.Minute

// bearerTransport authenticates requests to the agent project endpoint with a
// bearer token resolved from the ambient credential chain, and pins the
// api-version query parameter the endpoint expects. The cached token is the
// only mutable state shared between concurrent requests.
type bearerTransport struct {
	credential azcore.TokenCredential
	scope      string
	apiVersion string
	inner      http.RoundTripper

	mu    sync.Mutex
	token azcore.AccessToken
}

func newBearerTransport(credential azcore.TokenCredential, scope, apiVersion string) *bearerTransport {
	return &bearerTransport{
		credential: credential,
		scope:      scope,
		apiVersion: apiVersion,
		inner:      http.DefaultTransport,
	}
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.bearer(req.Context())
	if err != nil {
		return nil, err
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	if t.apiVersion != "" {
		q := clone.URL.Query()
		if q.Get("api-version") == "" {
			q.Set("api-version", t.apiVersion)
			clone.URL.RawQuery = q.Encode()
		}
	}

	return t.inner.RoundTrip(clone)
}

func (t *bearerTransport) bearer(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token.Token != "" && time.Until(t.token.ExpiresOn) > tokenRefreshMargin {
		return t.token.Token, nil
	}

	token, err := t.credential.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{t.scope},
	})
	if err != nil {
		return "", err
	}
	t.token = token
	return token.Token, nil
}
