package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"plan-migration-be/internal/entity"
)

// JSONB round-trip helpers shared by the mappers. Feature sets serialize as
// sorted arrays (see entity.FeatureSet), so stored payloads are byte-stable.

func featureSetToJSON(s entity.FeatureSet) datatypes.JSON {
	if s == nil {
		s = entity.NewFeatureSet()
	}
	data, _ := json.Marshal(s)
	return datatypes.JSON(data)
}

func featureSetFromJSON(data datatypes.JSON) entity.FeatureSet {
	s := entity.NewFeatureSet()
	if len(data) == 0 {
		return s
	}
	_ = json.Unmarshal(data, &s)
	return s
}

func toJSON(v interface{}) datatypes.JSON {
	data, _ := json.Marshal(v)
	return datatypes.JSON(data)
}

func fromJSON(data datatypes.JSON, v interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, v)
}
