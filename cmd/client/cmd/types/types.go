package types

// ContextKey is the type for values the root command stashes in the
// command context.
type ContextKey string

// ClientAppKey carries the initialized *client.App to subcommands.
const ClientAppKey ContextKey = "client_app"
