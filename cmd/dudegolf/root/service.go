package root

import (
	"context"
	"os"

	"github.com/MolochDaGod/DudeGolf/internal/engine"
	"github.com/MolochDaGod/DudeGolf/internal/storage"
)

// EnvPlayerUID selects the active player when --player is not given.
const EnvPlayerUID = "DUDEGOLF_PLAYER"

// identity resolves the player UID from flag, then env, then the
// built-in default. The engine only ever sees the provider.
func identity() engine.IdentityProvider {
	if playerFlag != "" {
		return engine.StaticIdentity(playerFlag)
	}
	if uid := os.Getenv(EnvPlayerUID); uid != "" {
		return engine.StaticIdentity(uid)
	}
	return engine.StaticIdentity(engine.DefaultPlayerUID)
}

// openService builds a service around the resolved DB path and loads
// the current player's ledger.
func openService(ctx context.Context) (*engine.Service, error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, err
	}
	svc := engine.NewService(storage.NewStore(path), engine.NewCatalog(), identity())
	if err := svc.LoadCurrent(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
