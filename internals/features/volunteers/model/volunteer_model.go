package model

// VolunteerModel is a registered volunteer record. Simpler than a
// submission: no moderation workflow, just the stored document.
type VolunteerModel struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Phone        string   `json:"phone"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
	RegisteredAt string   `json:"registered_at"`
	Status       string   `json:"status,omitempty"`
}

func NormalizeVolunteer(v *VolunteerModel) {
	if v.Status == "" {
		v.Status = "active"
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
}
