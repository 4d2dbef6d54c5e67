package keeper

// Serde converts values to and from the bytes kept in a Store.
type Serde interface {
	Serialize(value interface{}) ([]byte, error)
	Deserialize(bytes []byte) (interface{}, error)
}
