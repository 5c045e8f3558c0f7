/*
Package consolesdk is a Go client for the Stellar admin console HTTP API.

# Client vs Session

  - Client: public endpoints (login, health, JWKS) and creating sessions
  - Session: calls made as a signed-in user, carrying the session token

Sign in by email. An email that matches no user is not an error from Login,
but Authenticate turns it into ErrNotAuthenticated:

	client := consolesdk.NewClient("http://localhost:8080")

	session, err := client.Authenticate(ctx, "admin@stellar.io")
	if errors.Is(err, consolesdk.ErrNotAuthenticated) {
		// stay anonymous
	}

	me, err := session.Current(ctx)
	fmt.Println(me.User.Name, me.LandingPage)

# Permissions

Every Session call is checked server-side against the permissions of the
signed-in user's current role. Role changes take effect on the next call.
A missing permission comes back as an *APIError with StatusCode 403 and
Code ErrorCodeInsufficientPermission.

# Error Handling

Non-2xx responses are returned as *APIError:

	err := session.DeleteRole(ctx, "Admin")
	if consolesdk.HasCode(err, consolesdk.ErrorCodeProtectedRole) {
		// default roles cannot be deleted
	}

Validation failures carry per-field messages in APIError.Details.
*/
package consolesdk
