/*
Package authsdk is a Go client for the orgrole service.

# SDKClient vs Session

SDKClient talks to the unauthenticated endpoints and hands out Sessions:

	client := authsdk.NewSDKClient("https://orgrole.example.com")

	health, err := client.GetReadiness(ctx)

A Session attaches the caller's identity token, as issued by the identity
provider, to every request:

	session := client.NewSession(identityToken)

	me, err := session.WhoAmI(ctx)
	roles, err := session.ListRoles(ctx, me.OrgID)

The service never refreshes or mints tokens; when the provider's token
expires, create a new Session with a fresh one.

# Administrative operations

RestoreAdmin and SyncRoles require the caller to hold an administrator role:

	res, err := session.RestoreAdmin(ctx, "a@x.com")
	if err == nil && res.Outcome == authsdk.OutcomeNotFound {
		fmt.Println(res.Message) // "User not found"
	}

# Error Handling

Non-2xx responses are returned as *APIError, which carries the HTTP status
and the service's error code:

	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == authsdk.ErrorCodeStoreUnavailable {
		// the profile store is down; do not retry blindly
	}
*/
package authsdk
