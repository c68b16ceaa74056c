package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dorm"

var defaultRegistryManager = &RegistryManager{
	registerer: prometheus.DefaultRegisterer,
}

// RegistryManager holds the Registerer metrics are created against, so tests can swap it.
type RegistryManager struct {
	mu         sync.RWMutex
	registerer prometheus.Registerer
}

func GetRegisterer() prometheus.Registerer {
	return defaultRegistryManager.Get()
}

func (m *RegistryManager) Set(r prometheus.Registerer) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.registerer = r
}

func (m *RegistryManager) Get() prometheus.Registerer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.registerer == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registerer
}
