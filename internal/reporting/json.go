package reporting

import (
	"encoding/json"
	"fmt"

	"creator-fee-scan/internal/domain"
)

// RenderJSON returns the analysis as indented JSON.
func RenderJSON(a *domain.TokenAnalysis) (string, error) {
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode analysis: %w", err)
	}
	return string(out), nil
}
