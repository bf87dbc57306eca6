package locations

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"draftingco/internal/domain/entities"
)

//go:embed branches.json
var branchesJSON []byte

// Load returns the bundled branch dataset. The file is part of the binary,
// so a parse failure is a build defect, not a runtime condition.
func Load() ([]entities.ServiceLocation, error) {
	var branches []entities.ServiceLocation
	if err := json.Unmarshal(branchesJSON, &branches); err != nil {
		return nil, fmt.Errorf("parsing bundled branch dataset: %w", err)
	}
	return branches, nil
}
