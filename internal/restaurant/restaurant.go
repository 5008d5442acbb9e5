package restaurant

// Restaurant is the public DTO for the restaurant API. JSON tags follow the
// camelCase convention used elsewhere in the project.
type Restaurant struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	AmOpeningTime []string `json:"amOpeningTime"`
	PmOpeningTime []string `json:"pmOpeningTime"`
	MaxGuest      int      `json:"maxGuest"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// Update is the partial edit payload; absent fields stay as stored.
type Update struct {
	Name          *string   `json:"name,omitempty"`
	Description   *string   `json:"description,omitempty"`
	AmOpeningTime *[]string `json:"amOpeningTime,omitempty"`
	PmOpeningTime *[]string `json:"pmOpeningTime,omitempty"`
	MaxGuest      *int      `json:"maxGuest,omitempty"`
}
