package core

import "emperror.dev/errors"

const (
	// ErrPermissionDenied means the invoking member lacks the required role.
	ErrPermissionDenied = errors.Sentinel("permission denied")
	// ErrMissingArgument means a command needed an argument it did not get.
	ErrMissingArgument = errors.Sentinel("missing argument")
	// ErrMemberNotFound means a member reference resolved to nobody.
	ErrMemberNotFound = errors.Sentinel("member not found")
	// ErrDirectMessageUnavailable means a direct message could not be delivered.
	ErrDirectMessageUnavailable = errors.Sentinel("direct message unavailable")
	// ErrNotInGuild means a guild-only command ran outside a guild.
	ErrNotInGuild = errors.Sentinel("not in a guild")
)

// DenialText is sent when a role-gated command is refused.
const DenialText = "You do not have the correct role for this command."
