package model

// Product is one menu entry from the bakery backend's product config.
// The list is read-only and immutable within a session.
type Product struct {
	Key             string         `json:"key"`
	DisplayName     string         `json:"display_name"`
	DailyCapacity   int            `json:"daily_capacity"`
	StorageCapacity int            `json:"storage_capacity"`
	WaitTimeHours   int            `json:"wait_time_hours"`
	PerOrderMax     *int           `json:"per_order_max,omitempty"`
	Extra           map[string]any `json:"extra,omitempty"`
}
