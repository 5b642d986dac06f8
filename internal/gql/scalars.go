package gql

// Slug mirrors the CMS slug object, whose value lives under `current`.
type Slug struct {
	Current *string `json:"current"`
}

func (s *Slug) Value() string {
	if s == nil || s.Current == nil {
		return ""
	}
	return *s.Current
}
