/*

Keeper persists reducer state in a key-value store, one JSON value per key.

*/

package keeper

// Store is the backing key-value store used by Keeper.
// Keys are strings and values are serialized bytes.
type Store interface {
	// get value by key, returns nil, nil if the key is missing
	Get(key string) ([]byte, error)
	// insert or overwrite value by key
	Put(key string, value []byte) error
	// deletes key from store, deleting a missing key is not an error
	Delete(key string) error
	// flush store contents to DB/drive/anything
	Flush() error
}
