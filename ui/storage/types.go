package storage

// Config represents the application configuration stored in config.json
type Config struct {
	Version       int              `json:"version"`
	KeepNavPinned bool             `json:"keepNavPinned"` // Suppress content-triggered sidebar collapse
	AutoDiscovery bool             `json:"autoDiscovery"`
	Controller    ControllerMap    `json:"controller"`
	Hosts         []RegisteredHost `json:"hosts"`
}

// ControllerMap contains the touch-zone-to-button mapping state
type ControllerMap struct {
	MapID     string   `json:"mapId"`               // Active preset or custom slot
	FrontGrid []string `json:"frontGrid,omitempty"` // Output per front grid cell, row-major
	RearGrid  []string `json:"rearGrid,omitempty"`  // Output per rear grid cell, row-major
}

// RegisteredHost is a console the user has paired with
type RegisteredHost struct {
	Name      string `json:"name"`
	Addr      string `json:"addr"`
	HostID    string `json:"hostId"`
	RegistKey string `json:"registKey"`
}

// Grid dimensions for the mapping editor. Front and rear pads use the same
// logical grid; the rear pad additionally exposes a whole-pad binding.
const (
	FrontGridRows = 3
	FrontGridCols = 6
	RearGridRows  = 3
	RearGridCols  = 6
)

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		KeepNavPinned: false,
		AutoDiscovery: true,
		Controller: ControllerMap{
			MapID:     "default",
			FrontGrid: make([]string, FrontGridRows*FrontGridCols),
			RearGrid:  make([]string, RearGridRows*RearGridCols),
		},
		Hosts: []RegisteredHost{},
	}
}
