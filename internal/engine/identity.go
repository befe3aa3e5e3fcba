package engine

// IdentityProvider supplies the stable player UID used as the
// progression primary key. How login happens is someone else's
// problem; the engine only ever sees the resulting identifier.
type IdentityProvider interface {
	CurrentPlayerUID() string
}

// StaticIdentity is an IdentityProvider fixed to one UID. Used by the
// CLI (env/flag value) and tests.
type StaticIdentity string

func (s StaticIdentity) CurrentPlayerUID() string { return string(s) }

// DefaultPlayerUID is used when no identity is configured.
const DefaultPlayerUID = "local_player"
