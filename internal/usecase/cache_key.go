package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

type recommendationKeyInput struct {
	WorkItemID uuid.UUID `json:"work_item_id"`
	TopN       int       `json:"top_n"`
}

func recommendationCacheKey(workItemID uuid.UUID, topN int) string {
	in := recommendationKeyInput{WorkItemID: workItemID, TopN: topN}
	b, err := json.Marshal(in)
	if err != nil {
		return "recommendations:" + workItemID.String()
	}
	sum := sha256.Sum256(b)
	return "recommendations:" + hex.EncodeToString(sum[:])
}
