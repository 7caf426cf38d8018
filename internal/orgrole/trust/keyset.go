package trust

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	jose "github.com/go-jose/go-jose/v4"
)

const maxKeySetBytes = 1 << 20

// CheckKeySet fetches the anchor's JWKS and requires at least one public
// signing key in it.
func (v *Verifier) CheckKeySet(ctx context.Context) error {
	url := v.anchor.KeySetURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeySetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %s", ErrKeySetUnavailable, url, resp.Status)
	}

	var set jose.JSONWebKeySet
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxKeySetBytes)).Decode(&set); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrKeySetUnavailable, url, err)
	}

	for _, k := range set.Keys {
		if k.Valid() && k.IsPublic() && (k.Use == "" || k.Use == "sig") {
			return nil
		}
	}
	return fmt.Errorf("%w: %s has no public signing keys", ErrKeySetUnavailable, url)
}
