package models

// AnswerDictionary is the flat answer map produced by a filled-in survey
// instance. Keys follow the control ("group@question@shortId") or onboarding
// ("page^question^shortId") conventions.
type AnswerDictionary map[string]interface{}

type InProgressAssessment struct {
	ID               string `json:"id" bson:"_id"`
	Name             string `json:"name" bson:"name"`
	CurrentPage      int    `json:"currentPage" bson:"currentPage"`
	PercentCompleted int    `json:"percentCompleted" bson:"percentCompleted"`
	StoragePath      string `json:"storagePath" bson:"storagePath"`
	Version          string `json:"version" bson:"version"`
	Owner            string `json:"owner" bson:"owner"`
	TimeModel        `bson:",inline"`
}

type CompletedAssessment struct {
	ID              string `json:"id" bson:"_id"`
	Name            string `json:"name" bson:"name"`
	CompletedAt     string `json:"completedAt" bson:"completedAt"`
	ComplianceScore int    `json:"complianceScore" bson:"complianceScore"`
	IsCompliant     bool   `json:"isCompliant" bson:"isCompliant"`
	StoragePath     string `json:"storagePath" bson:"storagePath"`
	Version         string `json:"version" bson:"version"`
	Owner           string `json:"owner" bson:"owner"`
	Duration        int64  `json:"duration" bson:"duration"`
	TimeModel       `bson:",inline"`
}
