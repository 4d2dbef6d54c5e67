package keeper

import (
	"encoding/json"
)

// JSONSerde serializes values as JSON text and deserializes them into
// generic JSON values: map[string]interface{}, []interface{}, float64,
// string, bool or nil.
type JSONSerde struct{}

// NewJSONSerde creates a JSON serde
func NewJSONSerde() *JSONSerde {
	return &JSONSerde{}
}

// Serialize returns serialized value as a byte array
func (serde *JSONSerde) Serialize(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

// Deserialize returns the value decoded from byte array
func (serde *JSONSerde) Deserialize(bytes []byte) (interface{}, error) {
	var value interface{}
	err := json.Unmarshal(bytes, &value)
	if err != nil {
		return nil, err
	}
	return value, nil
}
