// Package oauth implements the local side of the OAuth2 authorization-code
// grant used to obtain Google credentials for a freshly registered client.
//
// # Flow
//
//  1. BuildAuthorizationURL produces the URL the operator opens. It requests
//     offline access so that a refresh token is issued.
//  2. A CallbackServer listens on the redirect address (localhost:3888 by
//     default) for the provider's redirect carrying ?code=...
//  3. The first callback is handed to a TokenExchanger, and on success the
//     credentials are written by a credentials.Persister.
//  4. The browser receives a plain-text confirmation, or
//     "Error during token generation: {"error":"..."}" on failure, and the
//     server shuts down. It never handles a second callback.
//
// # Usage
//
//	client := credentials.Client{ID: id, Secret: secret}
//	fmt.Println(oauth.BuildAuthorizationURL(cfg, client))
//
//	srv := oauth.NewCallbackServer(cfg, client,
//	    oauth.NewExchanger(cfg, nil),
//	    credentials.FilePersister{Path: cfg.EnvFile})
//	if err := srv.Listen(); err != nil {
//	    return err // port in use
//	}
//	token, err := srv.Serve(ctx)
//
// The package has no command-line dependencies; prompts and printing live
// in the wizard and cmd packages.
package oauth
