package food

// Food is a dish on the menu. Every dish gets a server-issued uuid at
// creation, alongside the storage-assigned integer id.
type Food struct {
	ID          int     `json:"id"`
	UUID        string  `json:"uuid"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CategoryID  *int    `json:"categoryId,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// Update is the partial edit payload; absent fields stay as stored. The uuid
// and timestamps are server-owned and not editable.
type Update struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	CategoryID  *int     `json:"categoryId,omitempty"`
}
