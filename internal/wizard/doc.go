// Package wizard guides the operator through the manual Google Cloud
// console steps that precede the OAuth handshake: creating a project,
// enabling APIs, creating a consent screen and creating an OAuth client.
//
// Each Step carries text/template instructions rendered with the sprig
// function map, and a yes/no question. The Prompter abstraction keeps the
// flow testable; ReadlinePrompter is the terminal implementation.
//
//	prompter, err := wizard.NewReadlinePrompter()
//	if err != nil {
//		return err
//	}
//	defer prompter.Close()
//
//	client, err := wizard.New(cfg, prompter, os.Stdout).Run(ctx)
//	if errors.Is(err, wizard.ErrSetupIncomplete) {
//		return nil
//	}
package wizard
