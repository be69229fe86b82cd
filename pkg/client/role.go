package client

// DefaultRole is assumed when no credential exists and no hint is cached.
const DefaultRole = "user"

// HintCache is a best-effort store for the last-known role, the SDK
// equivalent of the frontend's local storage entry. Implementations must
// tolerate being empty.
type HintCache interface {
	Get() (string, bool)
	Set(role string)
}

// RoleResolver derives the active role. The credential claim is the single
// source of truth and is recomputed on every read; the hint cache is
// consulted only when no live credential exists.
type RoleResolver struct {
	session *Session
	cache   HintCache
}

// NewRoleResolver creates a resolver over the given session. cache may be
// nil.
func NewRoleResolver(session *Session, cache HintCache) *RoleResolver {
	return &RoleResolver{session: session, cache: cache}
}

// Role returns the active role. Resolution order: live credential claim,
// cached hint, DefaultRole. Unrecognised claim values fall through to the
// default rather than propagating.
func (r *RoleResolver) Role() string {
	if claims := r.session.Claims(); claims != nil && validRole(claims.Role) {
		if r.cache != nil {
			r.cache.Set(claims.Role)
		}
		return claims.Role
	}
	if r.cache != nil {
		if hint, ok := r.cache.Get(); ok && validRole(hint) {
			return hint
		}
	}
	return DefaultRole
}

func validRole(role string) bool {
	return role == "user" || role == "provider"
}

// MemoryHintCache is an in-process HintCache.
type MemoryHintCache struct {
	role string
	set  bool
}

func (m *MemoryHintCache) Get() (string, bool) { return m.role, m.set }

func (m *MemoryHintCache) Set(role string) {
	m.role = role
	m.set = true
}
