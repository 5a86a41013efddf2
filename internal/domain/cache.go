package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// EstimateKey derives a cache key from the full input tuple. Selection order is
// significant because breakdowns follow it; weights of unselected models are not.
func EstimateKey(req *EstimateRequest) string {
	var b strings.Builder

	for _, model := range req.Models {
		fmt.Fprintf(&b, "%q=%d;", model, req.Weights[model])
	}

	u := req.Usage
	fmt.Fprintf(&b, "|%d,%d,%d,%d,%d",
		u.TokensPerQuestion, u.UserCount, u.QuestionsPerUserPerDay, u.QuestionsPerReport, u.ReportsPerDay)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
