package owners

import (
	"fmt"
	"strings"
	"time"
)

// ---------- requests

type CreateOwnerRequest struct {
	Name     string   `json:"name" binding:"required"`
	Address  string   `json:"address"`
	Photo    string   `json:"photo"`
	Birthday Birthday `json:"birthday"`
}

type UpdateOwnerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// Birthday accepts both RFC 3339 timestamps and plain dates, since the web
// form submits "2006-01-02" values.
type Birthday struct {
	time.Time
}

func (b *Birthday) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			b.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid birthday %q", s)
}

// ---------- responses

type OwnerDTO struct {
	IDOwner string `json:"idOwner"`
	Name    string `json:"name"`
}
