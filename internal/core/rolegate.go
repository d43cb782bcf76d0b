package core

// Authorize reports whether member may run a command gated on requiredRole.
// An empty requiredRole means the command is open to everyone.
func Authorize(member Member, requiredRole string) bool {
	if requiredRole == "" {
		return true
	}
	return member.HasRole(requiredRole)
}
