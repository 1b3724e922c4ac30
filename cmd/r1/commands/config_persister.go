package commands

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// ConfigPersister implements the auth.ConfigPersister interface by writing
// refreshed tokens back to the CLI config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateToken stores the refreshed token and its expiry in the config.
func (p *ConfigPersister) UpdateToken(token string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	viper.Set("token", token)

	if !expiresAt.IsZero() {
		viper.Set("token_expires_at", expiresAt.Format(time.RFC3339))
	}

	viper.Set("last_refreshed", time.Now().Format(time.RFC3339))

	return saveConfig()
}
