package events

import (
	"encoding/json"
	"fmt"
)

const RKProjectLaunched = "project.launched"

// ProjectLaunched carries enough for a notification message.
type ProjectLaunched struct {
	ProjectID string `json:"project_id"`
	IdeaID    string `json:"idea_id"`
	OwnerID   string `json:"owner_id"`
	Name      string `json:"name"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload failed: %w", err)
	}
	return t, nil
}
