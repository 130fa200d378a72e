package models

type SystemSetting struct {
	ID          string      `json:"id" bson:"_id"`
	Name        string      `json:"name" bson:"name"`
	Value       interface{} `json:"value" bson:"value"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Category    string      `json:"category,omitempty" bson:"category,omitempty"`
	LastUpdated string      `json:"lastUpdated,omitempty" bson:"lastUpdated,omitempty"`
	UpdatedBy   string      `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}
